package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/pkg/controller"

	"github.com/stretchr/testify/require"
)

func assertCORSHeaders(t *testing.T, res *http.Response) {
	t.Helper()

	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/books", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.False(t, called, "preflight must not reach the wrapped handler")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	assertCORSHeaders(t, res)
}

func TestWithCORS_PassesThroughOtherMethods(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/members", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode, "wrapped handler's status must survive")
	assertCORSHeaders(t, res)
}
