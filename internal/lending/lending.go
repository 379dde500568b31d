package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookstore/internal/config"
	"bookstore/pkg/domain"
	"bookstore/pkg/metrics"
	"bookstore/pkg/serrors"
	"bookstore/pkg/storage"
)

// Options configure the lending rules. These settings are typically derived
// from application configuration.
type Options struct {
	// BorrowLimit is the maximum number of concurrently active loans a member
	// may hold.
	BorrowLimit int
	// PenaltyWindow is how long after PenalizedAt a member may not borrow.
	PenaltyWindow time.Duration
	// LatePeriod is the duration a loan may stay open before returning it is
	// late. A loan kept for exactly LatePeriod is already late.
	LatePeriod time.Duration
	// Clock returns the current time; it defaults to time.Now and exists so
	// tests can pin the clock.
	Clock func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BorrowLimit:   cfg.Lending.BorrowLimit,
		PenaltyWindow: cfg.Lending.PenaltyWindow,
		LatePeriod:    cfg.Lending.LatePeriod,
	}
}

// lender is the concrete implementation of the Lender interface. It evaluates
// the lending rules inside a single storage transaction per operation, relying
// on the storage layer's row locks so concurrent operations on the same member
// or book serialize.
type lender struct {
	// options holds the lending rule parameters.
	options Options
	// storage is the persistence layer used to load and mutate entities.
	storage storage.Storage
}

// Borrow opens a loan after evaluating the lending rules in order: stock,
// penalty, borrow limit, duplicate. The first failing rule wins. An expired
// penalty is cleared during evaluation; the clear takes effect only if the
// surrounding transaction commits.
func (l lender) Borrow(ctx context.Context, memberID domain.MemberID, bookCode string) error {
	err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		member, err := tx.MemberByID(ctx, memberID)
		if err != nil {
			return fmt.Errorf("could not get member: %w", err)
		}
		if member == nil {
			return serrors.With(serrors.ErrNotFound, "member %s not found", memberID)
		}

		book, err := tx.BookByCode(ctx, bookCode)
		if err != nil {
			return fmt.Errorf("could not get book: %w", err)
		}
		if book == nil {
			return serrors.With(serrors.ErrNotFound, "book %s not found", bookCode)
		}

		if book.Stock <= 0 {
			return serrors.With(domain.ErrOutOfStock, "book %s is out of stock", bookCode)
		}

		now := l.now()
		if !member.PenalizedAt.IsZero() {
			penaltyEnd := member.PenalizedAt.Add(l.options.PenaltyWindow)
			if now.Before(penaltyEnd) {
				return serrors.With(domain.ErrMemberPenalized,
					"member %s is penalized until %s", member.Code, penaltyEnd.Format(time.RFC3339))
			}

			// The window has elapsed; lift the penalty before the remaining
			// rules run.
			if err := tx.ClearMemberPenalty(ctx, member.ID); err != nil {
				return fmt.Errorf("could not clear member penalty: %w", err)
			}
		}

		if len(member.Loans) >= l.options.BorrowLimit {
			return serrors.With(domain.ErrBorrowLimitExceeded,
				"member %s already holds %d active loans", member.Code, len(member.Loans))
		}

		for _, loan := range member.Loans {
			if loan.BookCode == bookCode {
				return serrors.With(domain.ErrAlreadyBorrowed,
					"member %s already borrowed book %s", member.Code, bookCode)
			}
		}

		if _, err := tx.StoreLoans(ctx, domain.Loan{
			MemberID:   member.ID,
			BookCode:   book.Code,
			BorrowedAt: now,
		}); err != nil {
			return fmt.Errorf("could not store loan: %w", err)
		}

		// The guarded decrement refuses to drive stock negative; losing a race
		// for the last copy surfaces as out of stock.
		updated, err := tx.AdjustBookStock(ctx, book.Code, -1)
		if err != nil {
			return fmt.Errorf("could not decrement book stock: %w", err)
		}
		if updated == nil {
			return serrors.With(domain.ErrOutOfStock, "book %s is out of stock", bookCode)
		}

		return nil
	})

	metrics.BorrowsTotal.WithLabelValues(resultLabel(err)).Inc()

	return err
}

// Return closes the active loan for the given book code. The loan is looked up
// by book code alone; when its owner differs from memberID, the late penalty
// is applied to the owner. The memberID argument only gates on existence.
func (l lender) Return(ctx context.Context, memberID domain.MemberID, bookCode string) error {
	err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		member, err := tx.MemberByID(ctx, memberID)
		if err != nil {
			return fmt.Errorf("could not get member: %w", err)
		}
		if member == nil {
			return serrors.With(serrors.ErrNotFound, "member %s not found", memberID)
		}

		book, err := tx.BookByCode(ctx, bookCode)
		if err != nil {
			return fmt.Errorf("could not get book: %w", err)
		}
		if book == nil {
			return serrors.With(serrors.ErrNotFound, "book %s not found", bookCode)
		}

		loan, err := tx.ActiveLoanByBookCode(ctx, bookCode)
		if err != nil {
			return fmt.Errorf("could not get active loan: %w", err)
		}
		if loan == nil {
			return serrors.With(domain.ErrNotBorrowed, "book %s has no active loan", bookCode)
		}

		now := l.now()
		// Kept for at least LatePeriod means late, the boundary included.
		if now.Sub(loan.BorrowedAt) >= l.options.LatePeriod {
			if err := tx.SetMemberPenalty(ctx, loan.MemberID, now); err != nil {
				return fmt.Errorf("could not set member penalty: %w", err)
			}
		}

		closed, err := tx.CloseLoan(ctx, loan.ID, now)
		if err != nil {
			return fmt.Errorf("could not close loan: %w", err)
		}
		if closed == nil {
			return serrors.With(domain.ErrNotBorrowed, "book %s has no active loan", bookCode)
		}

		// The book row is locked by the lookup above, so the increment can only
		// miss if the row was deleted out from under us.
		restocked, err := tx.AdjustBookStock(ctx, book.Code, 1)
		if err != nil {
			return fmt.Errorf("could not increment book stock: %w", err)
		}
		if restocked == nil {
			return serrors.With(serrors.ErrInternal, "book %s disappeared while restocking", bookCode)
		}

		return nil
	})

	metrics.ReturnsTotal.WithLabelValues(resultLabel(err)).Inc()

	return err
}

// MemberBooks lists the books the member currently has on loan, in the order
// the loans were opened.
func (l lender) MemberBooks(ctx context.Context, memberID domain.MemberID) ([]domain.BorrowedBookDetail, error) {
	member, err := l.storage.MemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("could not get member: %w", err)
	}
	if member == nil {
		return nil, serrors.With(serrors.ErrNotFound, "member %s not found", memberID)
	}

	out := make([]domain.BorrowedBookDetail, 0, len(member.Loans))
	for _, loan := range member.Loans {
		if loan.Book == nil {
			continue
		}
		out = append(out, domain.BorrowedBookDetail{
			Code:       loan.Book.Code,
			Title:      loan.Book.Title,
			Author:     loan.Book.Author,
			Stock:      loan.Book.Stock,
			BorrowedAt: loan.BorrowedAt,
		})
	}

	return out, nil
}

// Members lists all members with their active loans and book details. Pure
// read, no rule evaluation.
func (l lender) Members(ctx context.Context) ([]domain.Member, error) {
	members, err := l.storage.Members(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get members: %w", err)
	}

	return members, nil
}

// now returns the engine's current time.
func (l lender) now() time.Time {
	if l.options.Clock != nil {
		return l.options.Clock()
	}

	return time.Now()
}

// resultLabel maps an operation outcome to the metrics result label: "ok" for
// success, the semantic kind for rule violations, "error" otherwise.
func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}

	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Kind() != nil {
		return sErr.Kind().Error()
	}

	return "error"
}

// New creates a new Lender instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Lender {
	return &lender{
		options: options,
		storage: storage,
	}
}
