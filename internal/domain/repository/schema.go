package repository

import "context"

// SchemaManager owns table definitions, version upgrades and seed data.
type SchemaManager interface {
	// Open creates and seeds a fresh store, or upgrades an older one to targetVersion.
	Open(ctx context.Context, targetVersion int) error

	// Upgrade runs the migrations in (from, to]. A failing step falls back to Rebuild.
	Upgrade(ctx context.Context, from, to int) error

	// Rebuild drops every table, recreates it at the latest version and reseeds.
	Rebuild(ctx context.Context) error

	// Version returns the stored schema version, 0 for an empty database.
	Version(ctx context.Context) (int, error)

	// Describe lists the columns of every managed table.
	Describe(ctx context.Context) (map[string][]string, error)
}
