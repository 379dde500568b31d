package lending_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookstore/internal/lending"
	"bookstore/pkg/domain"
	"bookstore/pkg/serrors"
	"bookstore/pkg/storage"
	mockstorage "bookstore/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	bookCode = "JK-45"
)

var (
	testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
)

func newTestLender(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, lending.Lender) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	l := lending.New(st, lending.Options{
		BorrowLimit:   2,
		PenaltyWindow: 3 * 24 * time.Hour,
		LatePeriod:    7 * 24 * time.Hour,
		Clock:         func() time.Time { return testNow },
	})

	return ctrl, st, l
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testMember(loans ...domain.Loan) *domain.Member {
	return &domain.Member{
		ID:    domain.MemberID(uuid.New()),
		Code:  "M001",
		Name:  "Angga",
		Loans: loans,
	}
}

func testBook(stock int) *domain.Book {
	return &domain.Book{Code: bookCode, Title: "Harry Potter", Author: "J.K Rowling", Stock: stock}
}

func TestLender_Borrow_OpensLoanAndDecrementsStock(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()
	book := testBook(1)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(book, nil)
		tx.EXPECT().StoreLoans(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
				if len(loans) != 1 {
					t.Fatalf("expected one loan input")
				}
				if loans[0].MemberID != member.ID || loans[0].BookCode != bookCode {
					t.Fatalf("loan bound to wrong member or book")
				}
				if !loans[0].BorrowedAt.Equal(testNow) {
					t.Fatalf("expected borrowedAt %v got %v", testNow, loans[0].BorrowedAt)
				}

				return loans, nil
			},
		)
		updated := testBook(0)
		tx.EXPECT().AdjustBookStock(gomock.Any(), bookCode, -1).Return(updated, nil)
	})

	if err := l.Borrow(context.Background(), member.ID, bookCode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLender_Borrow_MemberNotFound(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	memberID := domain.MemberID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), memberID).Return(nil, nil)
	})

	err := l.Borrow(context.Background(), memberID, bookCode)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLender_Borrow_BookNotFound(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(nil, nil)
	})

	err := l.Borrow(context.Background(), member.ID, bookCode)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLender_Borrow_OutOfStock(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(0), nil)
	})

	err := l.Borrow(context.Background(), member.ID, bookCode)
	if !errors.Is(err, domain.ErrOutOfStock) {
		t.Fatalf("expected out of stock, got %v", err)
	}
}

func TestLender_Borrow_PenalizedInsideWindow(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()
	member.PenalizedAt = testNow.Add(-time.Hour)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(1), nil)
	})

	err := l.Borrow(context.Background(), member.ID, bookCode)
	if !errors.Is(err, domain.ErrMemberPenalized) {
		t.Fatalf("expected penalized, got %v", err)
	}
}

func TestLender_Borrow_ExpiredPenaltyClearedAndLoanOpened(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()
	// penalty started exactly one window ago, so it is no longer in force
	member.PenalizedAt = testNow.Add(-3 * 24 * time.Hour)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(1), nil)
		tx.EXPECT().ClearMemberPenalty(gomock.Any(), member.ID).Return(nil)
		tx.EXPECT().StoreLoans(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
				return loans, nil
			},
		)
		tx.EXPECT().AdjustBookStock(gomock.Any(), bookCode, -1).Return(testBook(0), nil)
	})

	if err := l.Borrow(context.Background(), member.ID, bookCode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLender_Borrow_LimitExceeded(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember(
		domain.Loan{BookCode: "SHR-1", BorrowedAt: testNow.Add(-time.Hour)},
		domain.Loan{BookCode: "TW-11", BorrowedAt: testNow.Add(-time.Minute)},
	)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(1), nil)
	})

	err := l.Borrow(context.Background(), member.ID, bookCode)
	if !errors.Is(err, domain.ErrBorrowLimitExceeded) {
		t.Fatalf("expected borrow limit exceeded, got %v", err)
	}
}

func TestLender_Borrow_AlreadyBorrowed(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember(
		domain.Loan{BookCode: bookCode, BorrowedAt: testNow.Add(-time.Hour)},
	)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(1), nil)
	})

	err := l.Borrow(context.Background(), member.ID, bookCode)
	if !errors.Is(err, domain.ErrAlreadyBorrowed) {
		t.Fatalf("expected already borrowed, got %v", err)
	}
}

func TestLender_Borrow_LosesRaceForLastCopy(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(1), nil)
		tx.EXPECT().StoreLoans(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, loans ...domain.Loan) ([]domain.Loan, error) {
				return loans, nil
			},
		)
		// guarded decrement found no row with stock left
		tx.EXPECT().AdjustBookStock(gomock.Any(), bookCode, -1).Return(nil, nil)
	})

	err := l.Borrow(context.Background(), member.ID, bookCode)
	if !errors.Is(err, domain.ErrOutOfStock) {
		t.Fatalf("expected out of stock, got %v", err)
	}
}

func TestLender_Return_ClosesLoanAndRestocks(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()
	loan := &domain.Loan{
		ID:         domain.LoanID(uuid.New()),
		MemberID:   member.ID,
		BookCode:   bookCode,
		BorrowedAt: testNow.Add(-24 * time.Hour),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(0), nil)
		tx.EXPECT().ActiveLoanByBookCode(gomock.Any(), bookCode).Return(loan, nil)
		tx.EXPECT().CloseLoan(gomock.Any(), loan.ID, testNow).Return(loan, nil)
		tx.EXPECT().AdjustBookStock(gomock.Any(), bookCode, 1).Return(testBook(1), nil)
	})

	if err := l.Return(context.Background(), member.ID, bookCode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLender_Return_NotBorrowed(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(1), nil)
		tx.EXPECT().ActiveLoanByBookCode(gomock.Any(), bookCode).Return(nil, nil)
	})

	err := l.Return(context.Background(), member.ID, bookCode)
	if !errors.Is(err, domain.ErrNotBorrowed) {
		t.Fatalf("expected not borrowed, got %v", err)
	}
}

func TestLender_Return_BookGoneDuringRestockFails(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()
	loan := &domain.Loan{
		ID:         domain.LoanID(uuid.New()),
		MemberID:   member.ID,
		BookCode:   bookCode,
		BorrowedAt: testNow.Add(-24 * time.Hour),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(0), nil)
		tx.EXPECT().ActiveLoanByBookCode(gomock.Any(), bookCode).Return(loan, nil)
		tx.EXPECT().CloseLoan(gomock.Any(), loan.ID, testNow).Return(loan, nil)
		// the book row vanished before the increment could find it
		tx.EXPECT().AdjustBookStock(gomock.Any(), bookCode, 1).Return(nil, nil)
	})

	err := l.Return(context.Background(), member.ID, bookCode)
	if !errors.Is(err, serrors.ErrInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestLender_Return_LatePenalizesLoanOwner(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	// the caller is not the loan's owner: the penalty must still land on the
	// member who actually kept the book
	caller := testMember()
	owner := domain.MemberID(uuid.New())
	loan := &domain.Loan{
		ID:         domain.LoanID(uuid.New()),
		MemberID:   owner,
		BookCode:   bookCode,
		BorrowedAt: testNow.Add(-8 * 24 * time.Hour),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), caller.ID).Return(caller, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(0), nil)
		tx.EXPECT().ActiveLoanByBookCode(gomock.Any(), bookCode).Return(loan, nil)
		tx.EXPECT().SetMemberPenalty(gomock.Any(), owner, testNow).Return(nil)
		tx.EXPECT().CloseLoan(gomock.Any(), loan.ID, testNow).Return(loan, nil)
		tx.EXPECT().AdjustBookStock(gomock.Any(), bookCode, 1).Return(testBook(1), nil)
	})

	if err := l.Return(context.Background(), caller.ID, bookCode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLender_Return_ExactlyAtLatePeriodIsLate(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	member := testMember()
	loan := &domain.Loan{
		ID:         domain.LoanID(uuid.New()),
		MemberID:   member.ID,
		BookCode:   bookCode,
		BorrowedAt: testNow.Add(-7 * 24 * time.Hour),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)
		tx.EXPECT().BookByCode(gomock.Any(), bookCode).Return(testBook(0), nil)
		tx.EXPECT().ActiveLoanByBookCode(gomock.Any(), bookCode).Return(loan, nil)
		tx.EXPECT().SetMemberPenalty(gomock.Any(), member.ID, testNow).Return(nil)
		tx.EXPECT().CloseLoan(gomock.Any(), loan.ID, testNow).Return(loan, nil)
		tx.EXPECT().AdjustBookStock(gomock.Any(), bookCode, 1).Return(testBook(1), nil)
	})

	if err := l.Return(context.Background(), member.ID, bookCode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLender_Return_MemberNotFound(t *testing.T) {
	ctrl, st, l := newTestLender(t)

	memberID := domain.MemberID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MemberByID(gomock.Any(), memberID).Return(nil, nil)
	})

	err := l.Return(context.Background(), memberID, bookCode)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLender_MemberBooks_ReturnsLoanDetailsInOrder(t *testing.T) {
	ctrl, st, l := newTestLender(t)
	_ = ctrl

	book1 := testBook(2)
	book2 := &domain.Book{Code: "SHR-1", Title: "A Study in Scarlet", Author: "Arthur Conan Doyle", Stock: 1}
	member := testMember(
		domain.Loan{BookCode: book1.Code, Book: book1, BorrowedAt: testNow.Add(-2 * time.Hour)},
		domain.Loan{BookCode: book2.Code, Book: book2, BorrowedAt: testNow.Add(-time.Hour)},
	)

	st.EXPECT().MemberByID(gomock.Any(), member.ID).Return(member, nil)

	books, err := l.MemberBooks(context.Background(), member.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].Code != book1.Code || books[1].Code != book2.Code {
		t.Fatalf("expected loans in borrow order, got %q then %q", books[0].Code, books[1].Code)
	}
	if !books[0].BorrowedAt.Equal(member.Loans[0].BorrowedAt) {
		t.Fatalf("expected borrowedAt from the loan")
	}
}

func TestLender_MemberBooks_MemberNotFound(t *testing.T) {
	ctrl, st, l := newTestLender(t)
	_ = ctrl

	memberID := domain.MemberID(uuid.New())
	st.EXPECT().MemberByID(gomock.Any(), memberID).Return(nil, nil)

	if _, err := l.MemberBooks(context.Background(), memberID); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLender_Members_PassesThrough(t *testing.T) {
	ctrl, st, l := newTestLender(t)
	_ = ctrl

	members := []domain.Member{*testMember(), *testMember()}
	st.EXPECT().Members(gomock.Any()).Return(members, nil)

	got, err := l.Members(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got))
	}
}
