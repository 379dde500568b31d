package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoanID uniquely identifies a borrow transaction record.
type LoanID uuid.UUID

// String returns the canonical textual form of the loan ID.
func (id LoanID) String() string { return uuid.UUID(id).String() }

// MarshalText serializes the ID in its canonical textual form.
func (id LoanID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses a loan ID from its textual form.
func (id *LoanID) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = LoanID(u)

	return nil
}

// Loan is a borrow transaction record. It binds exactly one member and one
// book for its whole lifetime; neither reference is ever reassigned.
type Loan struct {
	// ID is the unique identifier of the loan.
	ID LoanID `json:"id"`
	// MemberID is the owner of the loan.
	MemberID MemberID `json:"memberId"`
	// BookCode references the borrowed book.
	BookCode string `json:"bookCode"`
	// Book carries the borrowed book's details on read paths; it may be nil
	// on write paths.
	Book *Book `json:"book,omitempty"`

	// BorrowedAt is set when the loan is opened and never changes.
	BorrowedAt time.Time `json:"borrowedAt"`
	// ReturnedAt is zero while the loan is active and is set exactly once
	// when the book comes back.
	ReturnedAt time.Time `json:"returnedAt"`
}

// Active reports whether the book is still out, i.e. the loan has no return
// timestamp yet.
func (l Loan) Active() bool { return l.ReturnedAt.IsZero() }
