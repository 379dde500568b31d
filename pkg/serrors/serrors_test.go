package serrors_test

import (
	"errors"
	"testing"

	"bookstore/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type driverError struct{ msg string }

func (e driverError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestNewKindMatchesThroughWrap(t *testing.T) {
	outOfStock := serrors.NewKind("OUT_OF_STOCK")
	e := serrors.With(outOfStock, "book JK-45 is out of stock")

	require.ErrorIs(t, e, outOfStock)
	require.NotErrorIs(t, e, serrors.ErrConflict)
	require.Equal(t, "OUT_OF_STOCK", outOfStock.Error())
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "member %s not found", "M001")
	require.Equal(t, "member M001 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, cause, "loading member M001")
	require.Equal(t, "loading member M001: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	cause := driverError{"duplicate key value"}
	e := serrors.Wrap(serrors.ErrConflict, cause, "storing book JK-45")

	require.ErrorIs(t, e, serrors.ErrConflict)
	require.ErrorIs(t, e, cause)
	require.NotErrorIs(t, e, serrors.ErrNotFound, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	cause := &driverError{"duplicate key value"}
	e := serrors.Wrap(serrors.ErrConflict, cause, "storing book JK-45")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrConflict, k)

	var de *driverError
	require.ErrorAs(t, e, &de, "errors.As should extract wrapped error type")
	require.Equal(t, cause, de)
}

func TestAccessors(t *testing.T) {
	cause := errors.New("token expired")
	e := serrors.Wrap(serrors.ErrUnauthorized, cause, "invalid bearer token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "invalid bearer token", e.Message())
	require.Equal(t, cause, e.Cause())
}
