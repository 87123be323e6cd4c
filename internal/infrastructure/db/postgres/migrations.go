package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations holds the schema DDL in execution order. Every statement
// is idempotent so Apply is safe to run on each startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS records (
		id         BIGSERIAL PRIMARY KEY,
		created_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
		first_name VARCHAR(50)  NOT NULL,
		last_name  VARCHAR(50)  NOT NULL,
		email      VARCHAR(50)  NOT NULL,
		phone      VARCHAR(15)  NOT NULL,
		address    VARCHAR(100) NOT NULL,
		city       VARCHAR(50)  NOT NULL,
		state      VARCHAR(50)  NOT NULL,
		zip_code   VARCHAR(20)  NOT NULL
	)`,
}

// Apply executes all schema migrations against db.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
