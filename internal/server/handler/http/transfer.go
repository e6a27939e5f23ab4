package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkboard/linkboard/internal/models"
	"github.com/linkboard/linkboard/internal/service"
)

// TransferService defines the bulk export/import operations required by
// the HTTP handlers.
type TransferService interface {
	// Export returns every item, admin-only included, in listing order.
	Export(ctx context.Context) ([]models.Item, error)
	// Import upserts raw records, optionally replacing the whole store,
	// and returns the number of records consumed.
	Import(ctx context.Context, records []any, replaceExisting bool) (int, error)
}

// TransferHandler handles bulk export and import of the item store.
type TransferHandler struct {
	TransferService TransferService
}

// Export handles GET /api/items/export.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	items, err := h.TransferService.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Item{"items": items})
}

// ImportRequest represents the JSON payload for a bulk import. The
// records array may be keyed "items" or "data"; older export files used
// the latter.
type ImportRequest struct {
	Items           []any `json:"items"`
	Data            []any `json:"data"`
	ReplaceExisting bool  `json:"replaceExisting"`
}

// Import handles POST /api/items/import. An empty or missing records
// array is rejected before anything is deleted, so replaceExisting
// cannot wipe the store by accident.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No items provided for import")
		return
	}

	records := req.Items
	if records == nil {
		records = req.Data
	}

	count, err := h.TransferService.Import(r.Context(), records, req.ReplaceExisting)
	switch {
	case errors.Is(err, service.ErrNoItems):
		writeError(w, http.StatusBadRequest, "No items provided for import")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Items imported successfully",
			"count":   count,
		})
	}
}
