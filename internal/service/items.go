package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/linkboard/linkboard/internal/models"
)

// ErrMissingFields is returned when a create request lacks name or url.
var ErrMissingFields = errors.New("missing required fields: name or url")

// ItemRepository defines the persistence operations needed by ItemService.
type ItemRepository interface {
	// List returns all items ordered by (category, order key), optionally
	// including admin-only items.
	List(ctx context.Context, includeAdminOnly bool) ([]models.Item, error)
	// Insert stores a new item.
	Insert(ctx context.Context, it models.Item) error
	// Update applies a partial field map to an existing item.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes an item by id.
	Delete(ctx context.Context, id string) error
}

// CategoryRegistry is the slice of category ordering the item service
// needs: registering a newly seen category at the end of the layout.
type CategoryRegistry interface {
	EnsureExists(ctx context.Context, name string) error
}

// ItemService implements dashboard item business logic.
type ItemService struct {
	repo       ItemRepository
	categories CategoryRegistry
}

// NewItemService constructs an ItemService with the provided repository
// and category registry.
func NewItemService(repo ItemRepository, categories CategoryRegistry) *ItemService {
	return &ItemService{repo: repo, categories: categories}
}

// CreateItemRequest carries the caller-supplied fields for a new item.
// Optional fields are pointers so an omitted field can be told apart
// from an explicit zero value.
type CreateItemRequest struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Description  *string  `json:"description"`
	Icon         *string  `json:"icon"`
	Category     *string  `json:"category"`
	CategoryIcon *string  `json:"categoryIcon"`
	Username     *string  `json:"username"`
	SecretKey    *string  `json:"secretKey"`
	OrderIndex   *float64 `json:"orderIndex"`
	IsAdminOnly  *bool    `json:"isAdminOnly"`
	Size         *string  `json:"size"`
}

func orDefault[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// List returns items grouped by category and sorted by order key within
// each category. Non-admin callers never see admin-only items.
func (s *ItemService) List(ctx context.Context, isAdmin bool) ([]models.Item, error) {
	return s.repo.List(ctx, isAdmin)
}

// Create validates the request, applies defaults for omitted fields,
// stores the item under a fresh id, and registers its category in the
// layout if it was not known yet.
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (models.Item, error) {
	if req.Name == "" || req.URL == "" {
		return models.Item{}, ErrMissingFields
	}

	it := models.Item{
		ID:           uuid.NewString(),
		Name:         req.Name,
		URL:          req.URL,
		Description:  orDefault(req.Description, ""),
		Icon:         orDefault(req.Icon, models.DefaultIcon),
		Category:     orDefault(req.Category, models.DefaultCategory),
		CategoryIcon: orDefault(req.CategoryIcon, models.DefaultCategoryIcon),
		Username:     orDefault(req.Username, ""),
		SecretKey:    orDefault(req.SecretKey, ""),
		OrderIndex:   orDefault(req.OrderIndex, 0.0),
		IsAdminOnly:  orDefault(req.IsAdminOnly, false),
		Size:         orDefault(req.Size, models.DefaultSize),
	}

	if err := s.repo.Insert(ctx, it); err != nil {
		return models.Item{}, err
	}
	if err := s.categories.EnsureExists(ctx, it.Category); err != nil {
		return models.Item{}, err
	}
	return it, nil
}

// Update applies the supplied partial field map to the item with the
// given id. Unknown fields are ignored by the repository.
func (s *ItemService) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.repo.Update(ctx, id, fields)
}

// Delete removes the item with the given id.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
