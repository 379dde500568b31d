package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_ServesIndexAndCmdline(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"/", "/cmdline"} {
		req := httptest.NewRequest(http.MethodGet, "http://debug.local"+path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusOK, res.StatusCode, "path %s", path)
	}
}
