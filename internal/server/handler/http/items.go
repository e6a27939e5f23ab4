package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linkboard/linkboard/internal/middleware"
	"github.com/linkboard/linkboard/internal/models"
	"github.com/linkboard/linkboard/internal/repository"
	"github.com/linkboard/linkboard/internal/service"
)

// ItemService defines the item operations required by the HTTP handlers.
type ItemService interface {
	// List returns items ordered by (category, order key); non-admin
	// callers never receive admin-only items.
	List(ctx context.Context, isAdmin bool) ([]models.Item, error)
	// Create stores a new item and registers its category in the layout.
	Create(ctx context.Context, req service.CreateItemRequest) (models.Item, error)
	// Update applies a partial field map to an existing item.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes an item by id.
	Delete(ctx context.Context, id string) error
}

// ItemHandler handles dashboard item requests.
type ItemHandler struct {
	ItemService ItemService
}

// List handles GET /api/items. The caller's role toggles the visibility
// filter; the call itself is never rejected.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context(), middleware.IsAdmin(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: name or url")
		return
	}

	it, err := h.ItemService.Create(r.Context(), req)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields: name or url")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "Item added successfully",
			"id":      it.ID,
		})
	}
}

// Update handles PUT /api/items/{id}. Only fields present in the body
// are modified; unknown fields are ignored. An update that leaves every
// value unchanged still succeeds as long as the item exists.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "No update data provided")
		return
	}

	err := h.ItemService.Update(r.Context(), id, fields)
	switch {
	case errors.Is(err, repository.ErrEmptyUpdate):
		writeError(w, http.StatusBadRequest, "No valid fields to update")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Item updated successfully"})
	}
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.ItemService.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
	}
}
