package catalog

import (
	"context"
	"fmt"

	"bookstore/pkg/domain"
	"bookstore/pkg/serrors"
	"bookstore/pkg/storage"
)

// catalog is the concrete implementation of the Catalog interface. All
// operations are single statements, so no transaction handling is needed here.
type catalog struct {
	// storage is the persistence layer used to load and mutate entities.
	storage storage.Storage
}

// CreateBook adds a book to the catalog.
func (c catalog) CreateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	stored, err := c.storage.StoreBooks(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("could not store book: %w", err)
	}
	if len(stored) != 1 {
		return nil, serrors.With(serrors.ErrInternal, "expected one stored book, got %d", len(stored))
	}

	return &stored[0], nil
}

// Books lists the whole catalog.
func (c catalog) Books(ctx context.Context) ([]domain.Book, error) {
	books, err := c.storage.Books(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get books: %w", err)
	}

	return books, nil
}

// Book fetches a single book by code.
func (c catalog) Book(ctx context.Context, code string) (*domain.Book, error) {
	book, err := c.storage.BookByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not get book: %w", err)
	}
	if book == nil {
		return nil, serrors.With(serrors.ErrNotFound, "book %s not found", code)
	}

	return book, nil
}

// UpdateBook applies the provided updates to a book.
func (c catalog) UpdateBook(ctx context.Context, code string, updates storage.BookUpdates) (*domain.Book, error) {
	book, err := c.storage.UpdateBookByCode(ctx, code, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update book: %w", err)
	}
	if book == nil {
		return nil, serrors.With(serrors.ErrNotFound, "book %s not found", code)
	}

	return book, nil
}

// DeleteBook removes a book from the catalog.
func (c catalog) DeleteBook(ctx context.Context, code string) error {
	book, err := c.storage.DeleteBook(ctx, code)
	if err != nil {
		return fmt.Errorf("could not delete book: %w", err)
	}
	if book == nil {
		return serrors.With(serrors.ErrNotFound, "book %s not found", code)
	}

	return nil
}

// CreateMember registers a member.
func (c catalog) CreateMember(ctx context.Context, member domain.Member) (*domain.Member, error) {
	stored, err := c.storage.StoreMembers(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("could not store member: %w", err)
	}
	if len(stored) != 1 {
		return nil, serrors.With(serrors.ErrInternal, "expected one stored member, got %d", len(stored))
	}

	return &stored[0], nil
}

// Member fetches a single member by ID with their active loans.
func (c catalog) Member(ctx context.Context, id domain.MemberID) (*domain.Member, error) {
	member, err := c.storage.MemberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get member: %w", err)
	}
	if member == nil {
		return nil, serrors.With(serrors.ErrNotFound, "member %s not found", id)
	}

	return member, nil
}

// UpdateMember applies the provided updates to a member.
func (c catalog) UpdateMember(ctx context.Context, id domain.MemberID, updates storage.MemberUpdates) (*domain.Member, error) {
	member, err := c.storage.UpdateMemberByID(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update member: %w", err)
	}
	if member == nil {
		return nil, serrors.With(serrors.ErrNotFound, "member %s not found", id)
	}

	return member, nil
}

// DeleteMember removes a member from the registry.
func (c catalog) DeleteMember(ctx context.Context, id domain.MemberID) error {
	member, err := c.storage.DeleteMember(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete member: %w", err)
	}
	if member == nil {
		return serrors.With(serrors.ErrNotFound, "member %s not found", id)
	}

	return nil
}

// New creates a new Catalog instance backed by the provided storage.
func New(storage storage.Storage) Catalog {
	return &catalog{storage: storage}
}
