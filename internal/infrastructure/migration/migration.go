package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_cvs_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createCVsTable(ctx, pool)
			},
		},
		{
			Name: "add_title_index_to_cvs",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addTitleIndexToCVs(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createCVsTable creates the cvs table if it doesn't exist
func createCVsTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS cvs (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			data JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the table may already exist
		slog.Warn("Error creating cvs table (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured cvs table")
	return nil
}

// addTitleIndexToCVs adds a user_id index used by the dashboard listing
func addTitleIndexToCVs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS idx_cvs_user_id ON cvs (user_id);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error adding cvs user_id index (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured cvs user_id index")
	return nil
}
