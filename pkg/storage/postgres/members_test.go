package postgres_test

import (
	"context"
	"testing"
	"time"

	"bookstore/pkg/domain"
	"bookstore/pkg/serrors"
	"bookstore/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreMembers_GeneratesID(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	member := seedMember(t, pg, "M001")
	require.NotEqual(t, domain.MemberID{}, member.ID)
	require.False(t, member.CreatedAt.IsZero())
	require.True(t, member.PenalizedAt.IsZero())
}

func TestPgSQL_StoreMembers_DuplicateCodeConflicts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	seedMember(t, pg, "M001")

	_, err := pg.StoreMembers(context.Background(), domain.Member{Code: "M001", Name: "dupe"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestPgSQL_MemberByID_PopulatesActiveLoans(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	member := seedMember(t, pg, "M001")
	seedBook(t, pg, "JK-45", 1)
	seedBook(t, pg, "SHR-1", 1)

	first := seedLoan(t, pg, member.ID, "JK-45", time.Now().Add(-2*time.Hour))
	seedLoan(t, pg, member.ID, "SHR-1", time.Now().Add(-time.Hour))

	// a closed loan must not show up
	_, err := pg.CloseLoan(ctx, first.ID, time.Now())
	require.NoError(t, err)

	got, err := pg.MemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Loans, 1)
	require.Equal(t, "SHR-1", got.Loans[0].BookCode)
	require.NotNil(t, got.Loans[0].Book)
	require.Equal(t, "Title of SHR-1", got.Loans[0].Book.Title)
}

func TestPgSQL_MemberByID_UnknownReturnsNil(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := pg.MemberByID(context.Background(), domain.MemberID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_Members_LoansGroupedPerMember(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	m1 := seedMember(t, pg, "M001")
	seedMember(t, pg, "M002")
	seedBook(t, pg, "JK-45", 2)

	seedLoan(t, pg, m1.ID, "JK-45", time.Now().Add(-time.Hour))

	members, err := pg.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)

	byCode := map[string]domain.Member{}
	for _, m := range members {
		byCode[m.Code] = m
	}
	require.Len(t, byCode["M001"].Loans, 1)
	require.Empty(t, byCode["M002"].Loans)
}

func TestPgSQL_UpdateMemberByID(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	member := seedMember(t, pg, "M001")

	name := "Ferry"
	updated, err := pg.UpdateMemberByID(ctx, member.ID, storage.MemberUpdates{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, name, updated.Name)
	require.Equal(t, "M001", updated.Code)

	missing, err := pg.UpdateMemberByID(ctx, domain.MemberID(uuid.New()), storage.MemberUpdates{Name: &name})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_SetAndClearMemberPenalty(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	member := seedMember(t, pg, "M001")

	penalizedAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, pg.SetMemberPenalty(ctx, member.ID, penalizedAt))

	got, err := pg.MemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.PenalizedAt.IsZero())
	require.WithinDuration(t, penalizedAt, got.PenalizedAt, time.Millisecond)

	require.NoError(t, pg.ClearMemberPenalty(ctx, member.ID))

	got, err = pg.MemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.True(t, got.PenalizedAt.IsZero())
}

func TestPgSQL_DeleteMember_CascadesLoans(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	member := seedMember(t, pg, "M001")
	seedBook(t, pg, "JK-45", 1)
	seedLoan(t, pg, member.ID, "JK-45", time.Now())

	deleted, err := pg.DeleteMember(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	loan, err := pg.ActiveLoanByBookCode(ctx, "JK-45")
	require.NoError(t, err)
	require.Nil(t, loan)

	again, err := pg.DeleteMember(ctx, member.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}
