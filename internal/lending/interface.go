// Package lending holds the lending rule engine: it decides whether a member
// may borrow a book, applies stock and penalty bookkeeping, and governs the
// return workflow including late-return penalties.
package lending

import (
	"context"

	"bookstore/pkg/domain"
)

//go:generate mockgen -package mocklending -source=interface.go -destination=mock/mocklending.go *
type Lender interface {
	// Borrow opens a loan of the given book for the given member after all
	// lending rules pass. Rule violations surface as the semantic error kinds
	// in pkg/domain plus serrors.ErrNotFound for unknown entities.
	Borrow(ctx context.Context, memberID domain.MemberID, bookCode string) error
	// Return closes the active loan for the given book code. The loan is
	// matched by book code alone: when it belongs to a different member than
	// memberID, the late penalty still binds to the loan's actual owner.
	// memberID only gates on member existence.
	Return(ctx context.Context, memberID domain.MemberID, bookCode string) error
	// MemberBooks lists the books the member currently has on loan, in the
	// order the loans were opened.
	MemberBooks(ctx context.Context, memberID domain.MemberID) ([]domain.BorrowedBookDetail, error)
	// Members lists all members with their active loans and book details.
	Members(ctx context.Context) ([]domain.Member, error)
}
