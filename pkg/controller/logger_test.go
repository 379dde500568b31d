package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/pkg/controller"
	"bookstore/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    string
	}{
		{
			name: "first hop of X-Forwarded-For wins",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
			},
			want: "203.0.113.7",
		},
		{
			name: "X-Real-IP",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "198.51.100.4")
			},
			want: "198.51.100.4",
		},
		{
			name: "RemoteAddr without headers",
			prepare: func(r *http.Request) {
				r.RemoteAddr = "192.0.2.9:52114"
			},
			want: "192.0.2.9",
		},
		{
			name: "unparseable RemoteAddr passes through",
			prepare: func(r *http.Request) {
				r.RemoteAddr = "unix-socket"
			},
			want: "unix-socket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/members", nil)
			tt.prepare(req)
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	// echo the request ID from the context so it can be asserted on
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, _ := r.Context().Value(controller.RequestIDKey).(string); id != "" {
			w.Header().Set("X-Echo-Request-Id", id)
		}
		w.WriteHeader(http.StatusAccepted)
	})

	t.Run("provided header is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/members/borrowings", nil)
		req.Header.Set("X-Request-Id", "borrow-42")
		rec := httptest.NewRecorder()

		controller.WithLogger(next).ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusAccepted, res.StatusCode)
		require.Equal(t, "borrow-42", res.Header.Get("X-Echo-Request-Id"))
	})

	t.Run("missing header gets a generated id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		rec := httptest.NewRecorder()

		controller.WithLogger(next).ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusAccepted, res.StatusCode)
		require.NotEmpty(t, res.Header.Get("X-Echo-Request-Id"))
	})
}
