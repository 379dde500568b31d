package postgres

import (
	"context"
	"fmt"

	"bookstore/pkg/domain"
	"bookstore/pkg/serrors"
	"bookstore/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	booksTable = "books"
)

func (p *PgSQL) StoreBooks(ctx context.Context, books ...domain.Book) ([]domain.Book, error) {
	if len(books) == 0 {
		return nil, nil
	}

	var result []PgBook
	if err := p.Builder.Insert(booksTable).
		Rows(domainBooksToPg(books)).
		Returning(&PgBook{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "book code already exists")
		}

		return nil, fmt.Errorf("could not store books into pg: %w", err)
	}

	return pgBooksToDomain(result), nil
}

// Books returns the whole catalog ordered by creation time.
func (p *PgSQL) Books(ctx context.Context) ([]domain.Book, error) {
	var rows []PgBook
	if err := p.Builder.From(booksTable).
		Order(goqu.I("created_at").Asc(), goqu.I("code").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch books from pg: %w", err)
	}

	return pgBooksToDomain(rows), nil
}

// BookByCode returns a book by its unique code, or nil when unknown. Inside a
// transaction the row is locked until commit or rollback.
func (p *PgSQL) BookByCode(ctx context.Context, code string) (*domain.Book, error) {
	ds := p.Builder.From(booksTable).
		Where(goqu.I("code").Eq(code))
	if p.inTx() {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgBook
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch book by code: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateBookByCode updates a single book identified by its code and returns the
// updated row. Only provided fields are changed and updated_at is set automatically.
func (p *PgSQL) UpdateBookByCode(ctx context.Context, code string, updates storage.BookUpdates) (*domain.Book, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Author != nil {
		rec["author"] = *updates.Author
	}
	if updates.Stock != nil {
		rec["stock"] = *updates.Stock
	}

	var row PgBook
	found, err := p.Builder.Update(booksTable).
		Set(rec).Where(
		goqu.I("code").Eq(code),
	).Returning(&PgBook{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update book in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// AdjustBookStock applies delta to the book's stock in one guarded statement.
// The guard keeps stock from going negative: when delta is a decrement, the
// update only matches rows with enough stock, and the caller observes a nil
// book when the write was refused (or the code is unknown).
func (p *PgSQL) AdjustBookStock(ctx context.Context, code string, delta int) (*domain.Book, error) {
	w := []goqu.Expression{
		goqu.I("code").Eq(code),
	}
	if delta < 0 {
		w = append(w, goqu.I("stock").Gte(-delta))
	}

	var row PgBook
	found, err := p.Builder.Update(booksTable).
		Set(goqu.Record{
			"stock":      goqu.L("stock + ?", delta),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(w...).
		Returning(&PgBook{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not adjust book stock in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteBook removes a book from the catalog, returning the deleted record or
// nil when the code is unknown.
func (p *PgSQL) DeleteBook(ctx context.Context, code string) (*domain.Book, error) {
	var row PgBook
	found, err := p.Builder.Delete(booksTable).
		Where(goqu.I("code").Eq(code)).
		Returning(&PgBook{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete book in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
