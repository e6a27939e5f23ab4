package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS dashboard_items (
    id VARCHAR(36) PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    url VARCHAR(2048) NOT NULL,
    description TEXT,
    icon VARCHAR(50),
    category VARCHAR(100),
    category_icon VARCHAR(50),
    username VARCHAR(255),
    secret_key TEXT,
    order_index DOUBLE PRECISION,
    is_admin_only BOOLEAN NOT NULL DEFAULT FALSE,
    size VARCHAR(20) NOT NULL DEFAULT 'medium'
);

CREATE TABLE IF NOT EXISTS category_order (
    category_name VARCHAR(100) PRIMARY KEY,
    order_index INTEGER NOT NULL DEFAULT 0
);
`

// InitPostgres opens a connection pool to PostgreSQL, verifies it with a
// ping, and bootstraps the schema. order_index is DOUBLE PRECISION so
// large drag-and-drop position values keep their precision.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
