package storage

import (
	"context"

	"bookstore/pkg/domain"
)

// BookUpdates describes a set of optional fields that can be applied to an
// existing book during an update. Only non-nil fields will be updated.
type BookUpdates struct {
	// Title, when provided, replaces the book title.
	Title *string
	// Author, when provided, replaces the book author.
	Author *string
	// Stock, when provided, replaces the available stock. It must not be used
	// to account for borrows/returns; use AdjustBookStock for those so the
	// non-negative guard applies.
	Stock *int
}

// BookStorage defines catalog and stock operations for books. Lookups signal
// not-found by returning a nil book and a nil error.
type BookStorage interface {
	// StoreBooks inserts one or more books and returns the stored rows as they
	// exist in the database (including generated fields). A duplicate code
	// results in a conflict error.
	StoreBooks(ctx context.Context, books ...domain.Book) ([]domain.Book, error)
	// Books returns the whole catalog ordered by creation time.
	Books(ctx context.Context) ([]domain.Book, error)
	// BookByCode fetches a single book by its unique code. Returns nil when not
	// found. Inside a transaction the returned row is locked for update.
	BookByCode(ctx context.Context, code string) (*domain.Book, error)
	// UpdateBookByCode updates a single book and returns the updated row, or
	// nil when the code is unknown. Only provided fields are changed and
	// updated_at is set automatically.
	UpdateBookByCode(ctx context.Context, code string, updates BookUpdates) (*domain.Book, error)
	// AdjustBookStock applies delta to the book's stock in a single guarded
	// update: the write is refused (nil returned) when the book does not exist
	// or the adjustment would drive stock negative.
	AdjustBookStock(ctx context.Context, code string, delta int) (*domain.Book, error)
	// DeleteBook removes a book from the catalog and returns the deleted row,
	// or nil if it was not found.
	DeleteBook(ctx context.Context, code string) (*domain.Book, error)
}
