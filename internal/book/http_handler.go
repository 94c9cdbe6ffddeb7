package book

import (
	"errors"
	"net/http"
	"strings"

	"librarycatalog/internal/httpx"
)

type HTTPHandler struct {
	catalog Catalog
}

func NewHTTPHandler(catalog Catalog) *HTTPHandler {
	return &HTTPHandler{catalog: catalog}
}

type searchReq struct {
	Q string `validate:"required"`
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListBooks(r.Context())
	if err != nil {
		httpx.JSONCatalogError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// Search handles GET /api/books/search?q=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := searchReq{Q: r.URL.Query().Get("q")}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	books, err := h.catalog.SearchBooks(r.Context(), req.Q)
	if err != nil {
		httpx.JSONCatalogError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"query": req.Q, "total": len(books)})
}

// GetByISBN handles GET /api/books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if isbn == "" || strings.Contains(isbn, "/") {
		http.NotFound(w, r)
		return
	}

	books, err := h.catalog.ListBooks(r.Context())
	if err != nil {
		httpx.JSONCatalogError(w, r, err)
		return
	}
	b, err := FindByISBN(books, isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}
