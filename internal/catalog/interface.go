// Package catalog manages the book catalog and the member registry. It covers
// plain CRUD; every lending decision lives in the lending package.
package catalog

import (
	"context"

	"bookstore/pkg/domain"
	"bookstore/pkg/storage"
)

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	// CreateBook adds a book to the catalog. A duplicate code yields a
	// conflict error.
	CreateBook(ctx context.Context, book domain.Book) (*domain.Book, error)
	// Books lists the whole catalog.
	Books(ctx context.Context) ([]domain.Book, error)
	// Book fetches a single book by code.
	Book(ctx context.Context, code string) (*domain.Book, error)
	// UpdateBook applies the provided updates to a book.
	UpdateBook(ctx context.Context, code string, updates storage.BookUpdates) (*domain.Book, error)
	// DeleteBook removes a book from the catalog.
	DeleteBook(ctx context.Context, code string) error

	// CreateMember registers a member. A duplicate code yields a conflict
	// error.
	CreateMember(ctx context.Context, member domain.Member) (*domain.Member, error)
	// Member fetches a single member by ID with their active loans.
	Member(ctx context.Context, id domain.MemberID) (*domain.Member, error)
	// UpdateMember applies the provided updates to a member.
	UpdateMember(ctx context.Context, id domain.MemberID, updates storage.MemberUpdates) (*domain.Member, error)
	// DeleteMember removes a member from the registry.
	DeleteMember(ctx context.Context, id domain.MemberID) error
}
