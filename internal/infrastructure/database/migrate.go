package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schema is applied at startup. CREATE TABLE IF NOT EXISTS keeps boot
// idempotent across restarts; the CHECK constraint enforces the humility
// score bounds even if a writer bypasses application-level validation.
const schema = `
CREATE TABLE IF NOT EXISTS superheroes (
	id VARCHAR(36) PRIMARY KEY,
	name TEXT NOT NULL,
	superpower TEXT NOT NULL,
	"humilityScore" INT NOT NULL CHECK ("humilityScore" >= 1 AND "humilityScore" <= 10),
	avatar TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate bootstraps the superheroes table.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("Database schema ready")
	return nil
}
