package postgres

import (
	"context"
	"fmt"
	"time"

	"bookstore/pkg/domain"
	"bookstore/pkg/serrors"
	"bookstore/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	membersTable = "members"
)

func (p *PgSQL) StoreMembers(ctx context.Context, members ...domain.Member) ([]domain.Member, error) {
	if len(members) == 0 {
		return nil, nil
	}

	var result []PgMember
	if err := p.Builder.Insert(membersTable).
		Rows(domainMembersToPg(members)).
		Returning(&PgMember{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "member code already exists")
		}

		return nil, fmt.Errorf("could not store members into pg: %w", err)
	}

	return pgMembersToDomain(result), nil
}

// Members returns all members with their active loans and the loans' book
// details populated, ordered by registration time.
func (p *PgSQL) Members(ctx context.Context) ([]domain.Member, error) {
	var rows []PgMember
	if err := p.Builder.From(membersTable).
		Order(goqu.I("created_at").Asc(), goqu.I("code").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch members from pg: %w", err)
	}

	members := pgMembersToDomain(rows)
	ids := make([]uuid.UUID, 0, len(members))
	for i := range members {
		ids = append(ids, uuid.UUID(members[i].ID))
	}

	loansByMember, err := p.activeLoansByMemberIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].Loans = loansByMember[uuid.UUID(members[i].ID)]
	}

	return members, nil
}

// MemberByID returns a member by ID with active loans populated, or nil when
// unknown. Inside a transaction the member row is locked until commit or rollback.
func (p *PgSQL) MemberByID(ctx context.Context, id domain.MemberID) (*domain.Member, error) {
	ds := p.Builder.From(membersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id)))
	if p.inTx() {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgMember
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch member by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	member := row.ToDomain()
	loansByMember, err := p.activeLoansByMemberIDs(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}
	member.Loans = loansByMember[row.ID]

	return member, nil
}

// UpdateMemberByID updates a single member identified by its ID and returns the
// updated row. Only provided fields are changed and updated_at is set automatically.
func (p *PgSQL) UpdateMemberByID(ctx context.Context,
	id domain.MemberID,
	updates storage.MemberUpdates) (*domain.Member, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Code != nil {
		rec["code"] = *updates.Code
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}

	var row PgMember
	found, err := p.Builder.Update(membersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgMember{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "member code already exists")
		}

		return nil, fmt.Errorf("could not update member in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SetMemberPenalty stamps the member's penalty start time.
func (p *PgSQL) SetMemberPenalty(ctx context.Context, id domain.MemberID, at time.Time) error {
	if _, err := p.Builder.Update(membersTable).
		Set(goqu.Record{
			"penalized_at": at,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not set member penalty in pg: %w", err)
	}

	return nil
}

// ClearMemberPenalty removes the member's penalty timestamp.
func (p *PgSQL) ClearMemberPenalty(ctx context.Context, id domain.MemberID) error {
	if _, err := p.Builder.Update(membersTable).
		Set(goqu.Record{
			"penalized_at": goqu.L("NULL"),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear member penalty in pg: %w", err)
	}

	return nil
}

// DeleteMember removes a member, returning the deleted record or nil when the
// ID is unknown. The member's loan history is removed with it.
func (p *PgSQL) DeleteMember(ctx context.Context, id domain.MemberID) (*domain.Member, error) {
	var row PgMember
	found, err := p.Builder.Delete(membersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgMember{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete member in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// activeLoansByMemberIDs loads the active loans of the given members in the
// order they were opened, stitches in each loan's book and groups the result
// by member.
func (p *PgSQL) activeLoansByMemberIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.Loan, error) {
	if len(ids) == 0 {
		return map[uuid.UUID][]domain.Loan{}, nil
	}

	var rows []PgLoan
	if err := p.Builder.From(loansTable).
		Where(
			goqu.I("member_id").In(ids),
			goqu.I("returned_at").IsNull(),
		).
		Order(goqu.I("borrowed_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch active loans from pg: %w", err)
	}

	books, err := p.booksByCodes(ctx, loanBookCodes(rows))
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]domain.Loan, len(ids))
	for i := range rows {
		loan := rows[i].ToDomain()
		if book, ok := books[loan.BookCode]; ok {
			b := book
			loan.Book = &b
		}
		out[rows[i].MemberID] = append(out[rows[i].MemberID], *loan)
	}

	return out, nil
}

// booksByCodes fetches books for the given codes keyed by code.
func (p *PgSQL) booksByCodes(ctx context.Context, codes []string) (map[string]domain.Book, error) {
	if len(codes) == 0 {
		return map[string]domain.Book{}, nil
	}

	var rows []PgBook
	if err := p.Builder.From(booksTable).
		Where(goqu.I("code").In(codes)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch books by codes from pg: %w", err)
	}

	out := make(map[string]domain.Book, len(rows))
	for i := range rows {
		out[rows[i].Code] = *rows[i].ToDomain()
	}

	return out, nil
}

// loanBookCodes returns the distinct book codes referenced by the given loans.
func loanBookCodes(loans []PgLoan) []string {
	seen := make(map[string]struct{}, len(loans))
	codes := make([]string, 0, len(loans))
	for i := range loans {
		if _, ok := seen[loans[i].BookCode]; ok {
			continue
		}
		seen[loans[i].BookCode] = struct{}{}
		codes = append(codes, loans[i].BookCode)
	}

	return codes
}
