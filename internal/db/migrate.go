package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// migrations are run in order on every startup. Each statement must be
// idempotent: CREATE ... IF NOT EXISTS, or an ALTER TABLE whose duplicate
// failure is tolerated above.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL DEFAULT '',
		source        TEXT NOT NULL CHECK(source IN ('solve','stdin','file')),
		makespan      REAL NOT NULL,
		priority_cost REAL NOT NULL,
		task_count    INTEGER NOT NULL,
		payload       TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}
