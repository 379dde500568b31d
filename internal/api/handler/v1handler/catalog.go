package v1handler

import (
	"net/http"

	"bookstore/pkg/domain"
	"bookstore/pkg/serrors"
	"bookstore/pkg/storage"

	"github.com/google/uuid"
)

type createBookRequest struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}

type updateBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Stock  *int    `json:"stock"`
}

type createMemberRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type updateMemberRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

// memberIDFromRequest parses the {id} path segment into a MemberID.
func memberIDFromRequest(r *http.Request) (domain.MemberID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.MemberID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid member id")
	}

	return domain.MemberID(id), nil
}

// CreateBook adds a book to the catalog.
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createBookRequest
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	if req.Code == "" || req.Title == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "code and title are required"))

		return
	}
	if req.Stock < 0 {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "stock must not be negative"))

		return
	}

	book, err := h.deps.Catalog.CreateBook(ctx, domain.Book{
		Code:   req.Code,
		Title:  req.Title,
		Author: req.Author,
		Stock:  req.Stock,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusCreated, book)
}

// ListBooks returns the whole catalog.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.deps.Catalog.Books(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusOK, books)
}

// GetBook returns a single book by code.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	book, err := h.deps.Catalog.Book(ctx, r.PathValue("code"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusOK, book)
}

// UpdateBook applies a partial update to a book.
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateBookRequest
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "stock must not be negative"))

		return
	}

	book, err := h.deps.Catalog.UpdateBook(ctx, r.PathValue("code"), storage.BookUpdates{
		Title:  req.Title,
		Author: req.Author,
		Stock:  req.Stock,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusOK, book)
}

// DeleteBook removes a book from the catalog.
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.deps.Catalog.DeleteBook(ctx, r.PathValue("code")); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateMember registers a member.
func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createMemberRequest
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	if req.Code == "" || req.Name == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "code and name are required"))

		return
	}

	member, err := h.deps.Catalog.CreateMember(ctx, domain.Member{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusCreated, member)
}

// GetMember returns a single member with their active loans.
func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := memberIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	member, err := h.deps.Catalog.Member(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusOK, member)
}

// UpdateMember applies a partial update to a member.
func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := memberIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req updateMemberRequest
	if err := decode(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	member, err := h.deps.Catalog.UpdateMember(ctx, id, storage.MemberUpdates{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	respond(ctx, w, http.StatusOK, member)
}

// DeleteMember removes a member from the registry.
func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := memberIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Catalog.DeleteMember(ctx, id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
