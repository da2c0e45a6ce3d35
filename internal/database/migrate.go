package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemas = map[string][]string{
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS sales (
			sale_id UUID PRIMARY KEY,
			customer_name TEXT NOT NULL,
			date_time TIMESTAMPTZ NOT NULL,
			product_description TEXT NOT NULL,
			amount NUMERIC(10, 2) NOT NULL,
			product_type TEXT NOT NULL,
			payment_method TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date_time ON sales (date_time)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS sales (
			sale_id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			date_time DATETIME NOT NULL,
			product_description TEXT NOT NULL,
			amount NUMERIC(10, 2) NOT NULL,
			product_type TEXT NOT NULL,
			payment_method TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date_time ON sales (date_time)`,
	},
}

// Migrate creates the sales table and its index if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for database driver %q", db.DriverName())
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
