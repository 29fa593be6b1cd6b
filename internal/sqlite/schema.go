package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Balance is stored as a canonical decimal string: sqlite has no exact
// decimal type and REAL would drift.
const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		last_name   TEXT NOT NULL,
		first_name  TEXT NOT NULL,
		middle_name TEXT,
		birth_date  TIMESTAMP,
		balance     TEXT NOT NULL DEFAULT '0',
		version     INTEGER NOT NULL DEFAULT 1
	);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
