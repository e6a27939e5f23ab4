package service

import (
	"context"
	"errors"
	"slices"

	"github.com/linkboard/linkboard/internal/models"
)

// ErrNoCategories is returned when a bulk category order update carries
// no entries.
var ErrNoCategories = errors.New("no category order entries provided")

// CategoryOrderRepository defines the persistence operations needed by
// CategoryService.
type CategoryOrderRepository interface {
	GetAll(ctx context.Context) ([]models.CategoryOrder, error)
	Upsert(ctx context.Context, orders []models.CategoryOrder) error
	Delete(ctx context.Context, name string) error
	EnsureExists(ctx context.Context, name string) error
	Sync(ctx context.Context) error
}

// CategoryService implements category layout ordering logic.
type CategoryService struct {
	repo CategoryOrderRepository
}

// NewCategoryService constructs a CategoryService with the provided
// repository.
func NewCategoryService(repo CategoryOrderRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Get returns the full category name to order index mapping.
func (s *CategoryService) Get(ctx context.Context) (map[string]int, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(orders))
	for _, co := range orders {
		result[co.CategoryName] = co.OrderIndex
	}
	return result, nil
}

// Update upserts the given name to index mapping. Entries are written in
// sorted name order so the statement sequence is deterministic.
func (s *CategoryService) Update(ctx context.Context, orders map[string]int) error {
	if len(orders) == 0 {
		return ErrNoCategories
	}

	names := make([]string, 0, len(orders))
	for name := range orders {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]models.CategoryOrder, 0, len(orders))
	for _, name := range names {
		entries = append(entries, models.CategoryOrder{CategoryName: name, OrderIndex: orders[name]})
	}
	return s.repo.Upsert(ctx, entries)
}

// Delete removes one category's order entry. Items in that category are
// untouched; the name is only a soft reference.
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

// EnsureExists registers a category at the end of the layout if absent.
func (s *CategoryService) EnsureExists(ctx context.Context, name string) error {
	return s.repo.EnsureExists(ctx, name)
}

// Sync reconciles the layout with the categories actually present on
// items, appending entries for any that are missing. Useful after a bulk
// import, which does not register categories on its own.
func (s *CategoryService) Sync(ctx context.Context) error {
	return s.repo.Sync(ctx)
}
