package domain

import "bookstore/pkg/serrors"

// Lending rule violations. These are durable business outcomes, not transient
// faults: callers must handle them explicitly and never retry automatically.
var (
	// ErrOutOfStock indicates the book has no available copies.
	ErrOutOfStock = serrors.NewKind("OUT_OF_STOCK")
	// ErrMemberPenalized indicates the member is inside an active penalty window.
	ErrMemberPenalized = serrors.NewKind("MEMBER_PENALIZED")
	// ErrBorrowLimitExceeded indicates the member already holds the maximum
	// number of active loans.
	ErrBorrowLimitExceeded = serrors.NewKind("BORROW_LIMIT_EXCEEDED")
	// ErrAlreadyBorrowed indicates the member already holds an active loan for
	// this exact book.
	ErrAlreadyBorrowed = serrors.NewKind("ALREADY_BORROWED")
	// ErrNotBorrowed indicates no active loan exists for the book code on return.
	ErrNotBorrowed = serrors.NewKind("NOT_BORROWED")
)
