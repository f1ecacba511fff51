package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meltforce/nextblock/internal/catalog"
	"github.com/meltforce/nextblock/internal/config"
)

// OpenCatalog resolves the configured template source. SQL sources are
// migrated and seeded with the built-in styles when empty. The returned close
// function releases the database handle, if any.
func OpenCatalog(ctx context.Context, cfg config.CatalogConfig, log *slog.Logger) (catalog.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case "", config.CatalogBuiltin:
		return catalog.Static{C: catalog.Builtin()}, noop, nil
	case config.CatalogFile:
		src := &catalog.FileSource{Path: cfg.Path}
		c, err := src.Catalog(ctx)
		if err != nil {
			return nil, nil, err
		}
		log.Info("template catalog loaded", "path", cfg.Path, "styles", len(c.Styles()))
		return src, noop, nil
	}

	var db *DB
	var err error
	switch cfg.Source {
	case config.CatalogSQLite:
		db, err = OpenSQLite(ctx, cfg.Path)
	case config.CatalogPostgres:
		db, err = OpenPostgres(ctx, cfg.DSN)
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
	if err != nil {
		return nil, nil, err
	}

	seeded, err := db.SeedStyles(ctx, catalog.Builtin().All())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("seeding templates: %w", err)
	}
	if seeded {
		log.Info("template catalog seeded", "source", cfg.Source)
	}
	return db, db.Close, nil
}
