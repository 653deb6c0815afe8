package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// Migrations holds the schema of the sqlite history backend.
//
//go:embed sql/*.sql
var Migrations embed.FS

// Migrate brings the history schema up to date. Applied migrations are tracked by darwin.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(Migrations, "sql"); err != nil {
		return fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return nil
}
