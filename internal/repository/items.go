// Package repository provides persistence for dashboard items and
// category ordering using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/linkboard/linkboard/internal/models"
)

// ErrNotFound is returned when the targeted row does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmptyUpdate is returned when an update request carries no
// recognized fields.
var ErrEmptyUpdate = errors.New("no valid fields to update")

// itemFields maps JSON field names to their storage columns, in the
// order SET clauses are generated. Fields not listed here are ignored
// on update.
var itemFields = []struct {
	name   string
	column string
}{
	{"name", "name"},
	{"url", "url"},
	{"description", "description"},
	{"icon", "icon"},
	{"category", "category"},
	{"categoryIcon", "category_icon"},
	{"username", "username"},
	{"secretKey", "secret_key"},
	{"orderIndex", "order_index"},
	{"isAdminOnly", "is_admin_only"},
	{"size", "size"},
}

const itemColumns = "id, name, url, description, icon, category, category_icon, username, secret_key, order_index, is_admin_only, size"

// PostgresItemRepository implements dashboard item persistence against a
// PostgreSQL database.
type PostgresItemRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresItemRepository creates a new PostgresItemRepository using
// the provided *sql.DB.
func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{DB: db}
}

func scanItem(rows *sql.Rows, it *models.Item) error {
	return rows.Scan(&it.ID, &it.Name, &it.URL, &it.Description, &it.Icon,
		&it.Category, &it.CategoryIcon, &it.Username, &it.SecretKey,
		&it.OrderIndex, &it.IsAdminOnly, &it.Size)
}

// List returns all items ordered by category and then by order key.
// When includeAdminOnly is false, admin-only items are excluded.
func (r *PostgresItemRepository) List(ctx context.Context, includeAdminOnly bool) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM dashboard_items ORDER BY category, order_index`
	if !includeAdminOnly {
		query = `SELECT ` + itemColumns + ` FROM dashboard_items WHERE is_admin_only = FALSE ORDER BY category, order_index`
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Insert stores a new item.
func (r *PostgresItemRepository) Insert(ctx context.Context, it models.Item) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO dashboard_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, it.ID, it.Name, it.URL, it.Description, it.Icon, it.Category,
		it.CategoryIcon, it.Username, it.SecretKey, it.OrderIndex,
		it.IsAdminOnly, it.Size)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Exists reports whether an item with the given id is stored.
func (r *PostgresItemRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM dashboard_items WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("item exists: %w", err)
	}
	return exists, nil
}

// Update applies a partial field map to the item with the given id.
// Only fields present in the map and listed in itemFields are written;
// everything else in the map is ignored. Existence is checked explicitly
// rather than via the affected-row count, so updating an item to values
// equal to its current ones still succeeds.
func (r *PostgresItemRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	var clauses []string
	var values []any
	for _, f := range itemFields {
		v, ok := fields[f.name]
		if !ok {
			continue
		}
		values = append(values, v)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", f.column, len(values)))
	}
	if len(clauses) == 0 {
		return ErrEmptyUpdate
	}

	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	values = append(values, id)
	query := fmt.Sprintf("UPDATE dashboard_items SET %s WHERE id = $%d",
		strings.Join(clauses, ", "), len(values))
	if _, err := r.DB.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete removes the item with the given id, returning ErrNotFound when
// no row matched.
func (r *PostgresItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM dashboard_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertAll inserts or overwrites items by id within a single
// transaction. When replaceExisting is true, every current item is
// deleted first.
func (r *PostgresItemRepository) UpsertAll(ctx context.Context, items []models.Item, replaceExisting bool) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if replaceExisting {
		if _, err := tx.ExecContext(ctx, `DELETE FROM dashboard_items`); err != nil {
			return fmt.Errorf("clear items: %w", err)
		}
	}

	for _, it := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO dashboard_items (`+itemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				url = EXCLUDED.url,
				description = EXCLUDED.description,
				icon = EXCLUDED.icon,
				category = EXCLUDED.category,
				category_icon = EXCLUDED.category_icon,
				username = EXCLUDED.username,
				secret_key = EXCLUDED.secret_key,
				order_index = EXCLUDED.order_index,
				is_admin_only = EXCLUDED.is_admin_only,
				size = EXCLUDED.size
		`, it.ID, it.Name, it.URL, it.Description, it.Icon, it.Category,
			it.CategoryIcon, it.Username, it.SecretKey, it.OrderIndex,
			it.IsAdminOnly, it.Size)
		if err != nil {
			return fmt.Errorf("upsert item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
