package v1handler

import (
	"net/http"

	"bookstore/pkg/serrors"
)

type borrowRequest struct {
	BookCode string `json:"bookCode"`
}

type returnRequest struct {
	BookCode string `json:"bookCode"`
}

// ListMembers returns all members with their active loans.
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.deps.Lender.Members(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusOK, members)
}

// ListMemberBooks returns the books a member currently has on loan.
func (h *Handler) ListMemberBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := memberIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	books, err := h.deps.Lender.MemberBooks(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusOK, books)
}

// BorrowBook opens a loan for the member.
func (h *Handler) BorrowBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := memberIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req borrowRequest
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	if req.BookCode == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "bookCode is required"))

		return
	}

	if err := h.deps.Lender.Borrow(ctx, id, req.BookCode); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReturnBook closes the active loan for the given book.
func (h *Handler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := memberIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req returnRequest
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	if req.BookCode == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "bookCode is required"))

		return
	}

	if err := h.deps.Lender.Return(ctx, id, req.BookCode); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
