package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

//go:embed schema/postgres.sql
var postgresSchema string

//go:embed schema/sqlite.sql
var sqliteSchema string

// Migrate creates the exercises, sessions and workouts tables if they do not
// exist yet. It is safe to run on every start.
func (db *DB) Migrate(ctx context.Context) error {
	schema := postgresSchema
	if db.DriverName() == DriverSQLite {
		schema = sqliteSchema
	}

	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		return fmt.Errorf("apply %s schema: %w", db.DriverName(), err)
	}

	log.Info().Str("driver", db.DriverName()).Msg("database schema up to date")
	return nil
}
