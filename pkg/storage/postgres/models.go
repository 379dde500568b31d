package postgres

import (
	"database/sql"
	"time"

	"bookstore/pkg/domain"

	"github.com/google/uuid"
)

type PgBook struct {
	Code   string `db:"code"`
	Title  string `db:"title"`
	Author string `db:"author"`
	Stock  int    `db:"stock"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBook) ToDomain() *domain.Book {
	return &domain.Book{
		Code:      p.Code,
		Title:     p.Title,
		Author:    p.Author,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgBook) FromDomain(book domain.Book) {
	*p = PgBook{
		Code:      book.Code,
		Title:     book.Title,
		Author:    book.Author,
		Stock:     book.Stock,
		CreatedAt: book.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  book.UpdatedAt,
			Valid: !book.UpdatedAt.IsZero(),
		},
	}
}

type PgMember struct {
	ID   uuid.UUID `db:"id"   goqu:"skipinsert"`
	Code string    `db:"code"`
	Name string    `db:"name"`

	PenalizedAt sql.NullTime `db:"penalized_at"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgMember) ToDomain() *domain.Member {
	return &domain.Member{
		ID:          domain.MemberID(p.ID),
		Code:        p.Code,
		Name:        p.Name,
		PenalizedAt: p.PenalizedAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgMember) FromDomain(member domain.Member) {
	*p = PgMember{
		ID:   uuid.UUID(member.ID),
		Code: member.Code,
		Name: member.Name,
		PenalizedAt: sql.NullTime{
			Time:  member.PenalizedAt,
			Valid: !member.PenalizedAt.IsZero(),
		},
		CreatedAt: member.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  member.UpdatedAt,
			Valid: !member.UpdatedAt.IsZero(),
		},
	}
}

type PgLoan struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	MemberID uuid.UUID `db:"member_id"`
	BookCode string    `db:"book_code"`

	BorrowedAt time.Time    `db:"borrowed_at"`
	ReturnedAt sql.NullTime `db:"returned_at" goqu:"skipinsert"`
}

func (p *PgLoan) ToDomain() *domain.Loan {
	return &domain.Loan{
		ID:         domain.LoanID(p.ID),
		MemberID:   domain.MemberID(p.MemberID),
		BookCode:   p.BookCode,
		BorrowedAt: p.BorrowedAt,
		ReturnedAt: p.ReturnedAt.Time,
	}
}

func (p *PgLoan) FromDomain(loan domain.Loan) {
	*p = PgLoan{
		ID:         uuid.UUID(loan.ID),
		MemberID:   uuid.UUID(loan.MemberID),
		BookCode:   loan.BookCode,
		BorrowedAt: loan.BorrowedAt,
		ReturnedAt: sql.NullTime{
			Time:  loan.ReturnedAt,
			Valid: !loan.ReturnedAt.IsZero(),
		},
	}
}

func domainBooksToPg(books []domain.Book) []PgBook {
	out := make([]PgBook, len(books))
	for i := range out {
		out[i].FromDomain(books[i])
	}

	return out
}

func pgBooksToDomain(books []PgBook) []domain.Book {
	out := make([]domain.Book, 0, len(books))
	for i := range books {
		out = append(out, *books[i].ToDomain())
	}

	return out
}

func domainMembersToPg(members []domain.Member) []PgMember {
	out := make([]PgMember, len(members))
	for i := range out {
		out[i].FromDomain(members[i])
	}

	return out
}

func pgMembersToDomain(members []PgMember) []domain.Member {
	out := make([]domain.Member, 0, len(members))
	for i := range members {
		out = append(out, *members[i].ToDomain())
	}

	return out
}

func domainLoansToPg(loans []domain.Loan) []PgLoan {
	out := make([]PgLoan, len(loans))
	for i := range out {
		out[i].FromDomain(loans[i])
	}

	return out
}

func pgLoansToDomain(loans []PgLoan) []domain.Loan {
	out := make([]domain.Loan, 0, len(loans))
	for i := range loans {
		out = append(out, *loans[i].ToDomain())
	}

	return out
}
