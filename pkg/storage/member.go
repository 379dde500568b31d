package storage

import (
	"context"
	"time"

	"bookstore/pkg/domain"
)

// MemberUpdates describes a set of optional fields that can be applied to an
// existing member during an update. Only non-nil fields will be updated.
type MemberUpdates struct {
	// Code, when provided, replaces the member's registration code.
	Code *string
	// Name, when provided, replaces the member's name.
	Name *string
}

// MemberStorage defines member registry operations. Member reads return the
// member together with their active loans (each loan carrying its book) in
// the order the loans were opened. Lookups signal not-found by returning a
// nil member and a nil error.
type MemberStorage interface {
	// StoreMembers inserts one or more members and returns the stored rows as
	// they exist in the database (including generated IDs). A duplicate code
	// results in a conflict error.
	StoreMembers(ctx context.Context, members ...domain.Member) ([]domain.Member, error)
	// Members returns all members with their active loans and book details.
	Members(ctx context.Context) ([]domain.Member, error)
	// MemberByID fetches a member by ID with active loans populated. Returns
	// nil when not found. Inside a transaction the member row is locked for
	// update.
	MemberByID(ctx context.Context, id domain.MemberID) (*domain.Member, error)
	// UpdateMemberByID updates a single member and returns the updated row, or
	// nil when the ID is unknown. Only provided fields are changed and
	// updated_at is set automatically.
	UpdateMemberByID(ctx context.Context, id domain.MemberID, updates MemberUpdates) (*domain.Member, error)
	// SetMemberPenalty stamps the member's penalty start time.
	SetMemberPenalty(ctx context.Context, id domain.MemberID, at time.Time) error
	// ClearMemberPenalty removes the member's penalty timestamp.
	ClearMemberPenalty(ctx context.Context, id domain.MemberID) error
	// DeleteMember removes a member and returns the deleted row, or nil if it
	// was not found.
	DeleteMember(ctx context.Context, id domain.MemberID) (*domain.Member, error)
}
