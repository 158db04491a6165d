package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// EnsureSchema creates the contacts table and its indexes when missing. It is
// idempotent and never alters an existing table. Field formats are checked
// before writing, so the table itself only enforces phone uniqueness.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool, table string) error {
	quoted := pq.QuoteIdentifier(table)
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + quoted + ` (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			phone      TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + pq.QuoteIdentifier(table+"_phone_key") + ` ON ` + quoted + ` (phone)`,
		`CREATE INDEX IF NOT EXISTS ` + pq.QuoteIdentifier(table+"_lower_name_idx") + ` ON ` + quoted + ` (lower(name))`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema for %s: %w", table, err)
		}
	}
	return nil
}
