package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemberID uniquely identifies a library member.
// It wraps uuid.UUID to provide type safety at the domain layer.
type MemberID uuid.UUID

// String returns the canonical textual form of the member ID.
func (id MemberID) String() string { return uuid.UUID(id).String() }

// MarshalText serializes the ID in its canonical textual form.
func (id MemberID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses a member ID from its textual form.
func (id *MemberID) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = MemberID(u)

	return nil
}

// Member represents a registered library member together with their currently
// active loans.
type Member struct {
	// ID is the unique identifier of the member.
	ID MemberID `json:"id"`
	// Code is the member's unique registration code (e.g. "M001").
	Code string `json:"code"`
	// Name is the member's display name.
	Name string `json:"name"`

	// PenalizedAt is the time the member's latest late-return penalty started.
	// Zero value means the member is not penalized.
	PenalizedAt time.Time `json:"penalizedAt"`

	// Loans holds the member's active (not yet returned) loans in the order
	// they were opened. Read paths populate each loan's Book.
	Loans []Loan `json:"loans"`

	// CreatedAt is the time the member was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the member was last modified; zero value means never updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
