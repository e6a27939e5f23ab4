package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linkboard/linkboard/internal/models"
)

// ErrNoItems is returned when an import carries no records.
var ErrNoItems = errors.New("no items provided")

// TransferRepository defines the persistence operations needed for bulk
// export and import.
type TransferRepository interface {
	List(ctx context.Context, includeAdminOnly bool) ([]models.Item, error)
	UpsertAll(ctx context.Context, items []models.Item, replaceExisting bool) error
}

// TransferService implements bulk export and import of the item store.
type TransferService struct {
	repo TransferRepository
}

// NewTransferService constructs a TransferService with the provided
// repository.
func NewTransferService(repo TransferRepository) *TransferService {
	return &TransferService{repo: repo}
}

// Export returns every item, admin-only included, in the same
// (category, order key) ordering as a listing.
func (s *TransferService) Export(ctx context.Context) ([]models.Item, error) {
	return s.repo.List(ctx, true)
}

// Import upserts the given raw records by id, optionally wiping the
// store first. Records that are not JSON objects are skipped. The
// returned count is the length of the input, skipped records included,
// which is what long-standing callers of this endpoint expect.
//
// Records without an explicit order key get their zero-based position in
// the input array, so a freshly imported batch has a deterministic,
// collision-free relative order.
//
// Import does not register categories in the layout; run a category
// sync (or create an item) to pick up categories introduced here.
func (s *TransferService) Import(ctx context.Context, records []any, replaceExisting bool) (int, error) {
	if len(records) == 0 {
		return 0, ErrNoItems
	}

	items := make([]models.Item, 0, len(records))
	for i, rec := range records {
		fields, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, itemFromRecord(fields, i))
	}

	if err := s.repo.UpsertAll(ctx, items, replaceExisting); err != nil {
		return 0, err
	}
	return len(records), nil
}

func stringField(rec map[string]any, key, def string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return def
}

func boolField(rec map[string]any, key string, def bool) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return def
}

// itemFromRecord builds an Item from a decoded import record, applying
// the same defaults as Create. pos is the record's index in the input
// array and becomes the order key when none is supplied.
func itemFromRecord(rec map[string]any, pos int) models.Item {
	it := models.Item{
		ID:           stringField(rec, "id", ""),
		Name:         stringField(rec, "name", ""),
		URL:          stringField(rec, "url", ""),
		Description:  stringField(rec, "description", ""),
		Icon:         stringField(rec, "icon", models.DefaultIcon),
		Category:     stringField(rec, "category", models.DefaultCategory),
		CategoryIcon: stringField(rec, "categoryIcon", models.DefaultCategoryIcon),
		Username:     stringField(rec, "username", ""),
		SecretKey:    stringField(rec, "secretKey", ""),
		IsAdminOnly:  boolField(rec, "isAdminOnly", false),
		Size:         stringField(rec, "size", models.DefaultSize),
	}
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if v, ok := rec["orderIndex"].(float64); ok {
		it.OrderIndex = v
	} else {
		it.OrderIndex = float64(pos)
	}
	return it
}
