package storage

import (
	"context"
	"time"

	"bookstore/pkg/domain"
)

// LoanStorage defines operations on borrow transaction records. An active loan
// is one whose return timestamp is not yet set; closed loans are kept for
// history and never deleted by these operations.
type LoanStorage interface {
	// StoreLoans inserts one or more loans and returns the stored rows as they
	// exist in the database (including generated IDs).
	StoreLoans(ctx context.Context, loans ...domain.Loan) ([]domain.Loan, error)
	// ActiveLoanByBookCode finds the oldest active loan for the given book
	// code, regardless of which member holds it, with the loan's book
	// populated. Returns nil when no active loan exists. Inside a transaction
	// the loan row is locked for update.
	ActiveLoanByBookCode(ctx context.Context, code string) (*domain.Loan, error)
	// CloseLoan sets the loan's return timestamp. The write only applies while
	// the loan is still active; nil is returned when the loan does not exist
	// or was already closed.
	CloseLoan(ctx context.Context, id domain.LoanID, returnedAt time.Time) (*domain.Loan, error)
	// CountOverdueLoans returns the number of active loans opened at or before
	// the given time.
	CountOverdueLoans(ctx context.Context, borrowedBefore time.Time) (int64, error)
}
