package postgres

import (
	"context"
	"fmt"
	"time"

	"bookstore/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	loansTable = "borrowed_books"
)

func (p *PgSQL) StoreLoans(ctx context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
	if len(loans) == 0 {
		return nil, nil
	}

	var result []PgLoan
	if err := p.Builder.Insert(loansTable).
		Rows(domainLoansToPg(loans)).
		Returning(&PgLoan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store loans into pg: %w", err)
	}

	return pgLoansToDomain(result), nil
}

// ActiveLoanByBookCode returns the oldest active loan for the given book code
// with the loan's book populated, or nil when no copy of the book is out.
// Inside a transaction the loan row is locked until commit or rollback.
func (p *PgSQL) ActiveLoanByBookCode(ctx context.Context, code string) (*domain.Loan, error) {
	ds := p.Builder.From(loansTable).
		Where(
			goqu.I("book_code").Eq(code),
			goqu.I("returned_at").IsNull(),
		).
		Order(goqu.I("borrowed_at").Asc(), goqu.I("id").Asc()).
		Limit(1)
	if p.inTx() {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgLoan
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active loan by book code: %w", err)
	}
	if !found {
		return nil, nil
	}

	loan := row.ToDomain()

	books, err := p.booksByCodes(ctx, []string{row.BookCode})
	if err != nil {
		return nil, err
	}
	if book, ok := books[row.BookCode]; ok {
		b := book
		loan.Book = &b
	}

	return loan, nil
}

// CloseLoan sets the loan's return timestamp. The guard on returned_at makes
// the close idempotent under races: only a still-active loan row is written,
// and nil is returned when the loan is unknown or already closed.
func (p *PgSQL) CloseLoan(ctx context.Context, id domain.LoanID, returnedAt time.Time) (*domain.Loan, error) {
	var row PgLoan
	found, err := p.Builder.Update(loansTable).
		Set(goqu.Record{
			"returned_at": returnedAt,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("returned_at").IsNull(),
	).Returning(&PgLoan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not close loan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CountOverdueLoans returns the number of active loans opened at or before the
// given time.
func (p *PgSQL) CountOverdueLoans(ctx context.Context, borrowedBefore time.Time) (int64, error) {
	var count int64
	if _, err := p.Builder.From(loansTable).
		Select(goqu.COUNT("*")).
		Where(
			goqu.I("returned_at").IsNull(),
			goqu.I("borrowed_at").Lte(borrowedBefore),
		).
		Executor().ScanValContext(ctx, &count); err != nil {
		return 0, fmt.Errorf("could not count overdue loans in pg: %w", err)
	}

	return count, nil
}
