package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linkboard/linkboard/internal/models"
)

// PostgresCategoryOrderRepository implements category layout ordering
// against a PostgreSQL database. Category names are a soft reference
// from items; there is no foreign key in either direction.
type PostgresCategoryOrderRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCategoryOrderRepository creates a new repository using the
// provided *sql.DB.
func NewPostgresCategoryOrderRepository(db *sql.DB) *PostgresCategoryOrderRepository {
	return &PostgresCategoryOrderRepository{DB: db}
}

// GetAll returns every category order entry, ascending by order index.
func (r *PostgresCategoryOrderRepository) GetAll(ctx context.Context) ([]models.CategoryOrder, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT category_name, order_index FROM category_order ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("get category order: %w", err)
	}
	defer rows.Close()

	orders := []models.CategoryOrder{}
	for rows.Next() {
		var co models.CategoryOrder
		if err := rows.Scan(&co.CategoryName, &co.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan category order: %w", err)
		}
		orders = append(orders, co)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get category order: %w", err)
	}
	return orders, nil
}

// Upsert inserts or updates the given entries within a single
// transaction, keyed by category name.
func (r *PostgresCategoryOrderRepository) Upsert(ctx context.Context, orders []models.CategoryOrder) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, co := range orders {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO category_order (category_name, order_index)
			VALUES ($1, $2)
			ON CONFLICT (category_name) DO UPDATE SET order_index = EXCLUDED.order_index
		`, co.CategoryName, co.OrderIndex)
		if err != nil {
			return fmt.Errorf("upsert category order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete removes one category's order entry. Removing an absent entry is
// not an error; the layout simply no longer mentions the category.
func (r *PostgresCategoryOrderRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.DB.ExecContext(ctx,
		`DELETE FROM category_order WHERE category_name = $1`, name); err != nil {
		return fmt.Errorf("delete category order: %w", err)
	}
	return nil
}

// EnsureExists registers a category at the end of the layout (current
// max index + 1) if it has no entry yet. Existing entries are left
// untouched.
func (r *PostgresCategoryOrderRepository) EnsureExists(ctx context.Context, name string) error {
	var maxOrder int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(order_index), -1) FROM category_order`).Scan(&maxOrder)
	if err != nil {
		return fmt.Errorf("max category order: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO category_order (category_name, order_index)
		VALUES ($1, $2)
		ON CONFLICT (category_name) DO NOTHING
	`, name, maxOrder+1)
	if err != nil {
		return fmt.Errorf("ensure category order: %w", err)
	}
	return nil
}

// Sync appends an order entry for every distinct item category that has
// none yet, in discovery order after the current max index. It never
// prunes entries whose category has no items left; orphaned entries are
// tolerated so a category keeps its slot while being refilled.
func (r *PostgresCategoryOrderRepository) Sync(ctx context.Context) error {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT DISTINCT category FROM dashboard_items WHERE category IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("distinct categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("distinct categories: %w", err)
	}

	var maxOrder int
	err = r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(order_index), -1) FROM category_order`).Scan(&maxOrder)
	if err != nil {
		return fmt.Errorf("max category order: %w", err)
	}

	for i, name := range categories {
		_, err := r.DB.ExecContext(ctx, `
			INSERT INTO category_order (category_name, order_index)
			VALUES ($1, $2)
			ON CONFLICT (category_name) DO NOTHING
		`, name, maxOrder+i+1)
		if err != nil {
			return fmt.Errorf("sync category order: %w", err)
		}
	}
	return nil
}
