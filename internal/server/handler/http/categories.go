package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linkboard/linkboard/internal/service"
)

// CategoryService defines the category layout operations required by the
// HTTP handlers.
type CategoryService interface {
	// Get returns the category name to order index mapping.
	Get(ctx context.Context) (map[string]int, error)
	// Update upserts the given mapping.
	Update(ctx context.Context, orders map[string]int) error
	// Delete removes one category's order entry.
	Delete(ctx context.Context, name string) error
}

// CategoryHandler handles category layout ordering requests.
type CategoryHandler struct {
	CategoryService CategoryService
}

// Get handles GET /api/category-order.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	orders, err := h.CategoryService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Update handles PUT /api/category-order with a {name: index} body.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var orders map[string]int
	if err := json.NewDecoder(r.Body).Decode(&orders); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data format")
		return
	}

	err := h.CategoryService.Update(r.Context(), orders)
	switch {
	case errors.Is(err, service.ErrNoCategories):
		writeError(w, http.StatusBadRequest, "Invalid data format")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Category order updated successfully"})
	}
}

// Delete handles DELETE /api/category-order/{name}. Deleting an entry
// that is already gone still succeeds; items keep their category either
// way.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.CategoryService.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category order deleted successfully"})
}
