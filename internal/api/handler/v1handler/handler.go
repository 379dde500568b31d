// Package v1handler implements the version 1 HTTP API on top of the lending
// and catalog services.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"bookstore/internal/catalog"
	"bookstore/internal/lending"
	"bookstore/pkg/domain"
	"bookstore/pkg/logger"
	"bookstore/pkg/serrors"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

//nolint: gochecknoglobals
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Deps holds the services the v1 handlers delegate to.
type Deps struct {
	Lender  lending.Lender
	Catalog catalog.Catalog
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Mux returns the route table for the v1 API. Authentication is applied by the
// caller around the whole mux.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/books", h.CreateBook)
	mux.HandleFunc("GET /v1/books", h.ListBooks)
	mux.HandleFunc("GET /v1/books/{code}", h.GetBook)
	mux.HandleFunc("PATCH /v1/books/{code}", h.UpdateBook)
	mux.HandleFunc("DELETE /v1/books/{code}", h.DeleteBook)

	mux.HandleFunc("POST /v1/members", h.CreateMember)
	mux.HandleFunc("GET /v1/members", h.ListMembers)
	mux.HandleFunc("GET /v1/members/{id}", h.GetMember)
	mux.HandleFunc("PATCH /v1/members/{id}", h.UpdateMember)
	mux.HandleFunc("DELETE /v1/members/{id}", h.DeleteMember)

	mux.HandleFunc("GET /v1/members/{id}/books", h.ListMemberBooks)
	mux.HandleFunc("POST /v1/members/{id}/borrowings", h.BorrowBook)
	mux.HandleFunc("POST /v1/members/{id}/returns", h.ReturnBook)

	return mux
}

// errorResponse is the wire shape of every error the API returns.
type errorResponse struct {
	// Code is the semantic error kind, e.g. "NOT_FOUND" or "OUT_OF_STOCK".
	Code string `json:"code"`
	// Error is a human-readable description.
	Error string `json:"error"`
}

// statusFromKind maps a semantic error kind to an HTTP status. Lending rule
// violations are well-formed requests the business rejected, hence 422.
func statusFromKind(err error) (int, string) {
	for _, m := range []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrNotFound, http.StatusNotFound},
		{serrors.ErrBadRequest, http.StatusBadRequest},
		{serrors.ErrConflict, http.StatusConflict},
		{serrors.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrOutOfStock, http.StatusUnprocessableEntity},
		{domain.ErrMemberPenalized, http.StatusUnprocessableEntity},
		{domain.ErrBorrowLimitExceeded, http.StatusUnprocessableEntity},
		{domain.ErrAlreadyBorrowed, http.StatusUnprocessableEntity},
		{domain.ErrNotBorrowed, http.StatusUnprocessableEntity},
	} {
		if errors.Is(err, m.kind) {
			return m.status, m.kind.Error()
		}
	}

	return http.StatusInternalServerError, serrors.ErrInternal.Error()
}

func respond(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code := statusFromKind(err)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		// do not leak internals
		respond(ctx, w, status, errorResponse{Code: code, Error: "internal server error"})

		return
	}

	respond(ctx, w, status, errorResponse{Code: code, Error: err.Error()})
}

// decode reads the request body into dst, rejecting malformed payloads.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
