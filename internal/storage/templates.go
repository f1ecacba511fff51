package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/meltforce/nextblock/internal/catalog"
)

// Catalog loads every stored style in position order. It satisfies
// catalog.Source, so a DB can back the generator directly.
func (db *DB) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	styles, err := db.ListStyles(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(styles)
}

// ListStyles returns the stored styles with their days.
func (db *DB) ListStyles(ctx context.Context) ([]catalog.Style, error) {
	rows, err := db.SQL.QueryContext(ctx, `
		SELECT s.name, d.title, d.items
		FROM template_styles s
		LEFT JOIN template_days d ON d.style = s.name
		ORDER BY s.position, d.day_index
	`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var styles []catalog.Style
	for rows.Next() {
		var name string
		var title, items *string
		if err := rows.Scan(&name, &title, &items); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		if len(styles) == 0 || styles[len(styles)-1].Name != name {
			styles = append(styles, catalog.Style{Name: name})
		}
		if title == nil {
			continue
		}
		s := &styles[len(styles)-1]
		s.Days = append(s.Days, catalog.TemplateDay{Title: *title, Items: splitItems(deref(items))})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return styles, nil
}

// CountStyles returns how many styles are stored.
func (db *DB) CountStyles(ctx context.Context) (int, error) {
	var n int
	if err := db.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM template_styles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting templates: %w", err)
	}
	return n, nil
}

// ReplaceStyles swaps the whole stored catalog for styles in one transaction.
func (db *DB) ReplaceStyles(ctx context.Context, styles []catalog.Style) error {
	if _, err := catalog.New(styles); err != nil {
		return fmt.Errorf("validating templates: %w", err)
	}

	tx, err := db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM template_days`); err != nil {
		return fmt.Errorf("clearing template days: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM template_styles`); err != nil {
		return fmt.Errorf("clearing template styles: %w", err)
	}

	insertStyle := db.rebind(`INSERT INTO template_styles (name, position) VALUES (?, ?)`)
	insertDay := db.rebind(`INSERT INTO template_days (style, day_index, title, items) VALUES (?, ?, ?, ?)`)
	for i, s := range styles {
		if _, err := tx.ExecContext(ctx, insertStyle, s.Name, i); err != nil {
			return fmt.Errorf("inserting style %q: %w", s.Name, err)
		}
		for j, d := range s.Days {
			if _, err := tx.ExecContext(ctx, insertDay, s.Name, j, d.Title, strings.Join(d.Items, "\n")); err != nil {
				return fmt.Errorf("inserting style %q day %d: %w", s.Name, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing templates: %w", err)
	}
	return nil
}

// SeedStyles stores styles only when the catalog table is empty. It reports
// whether anything was written.
func (db *DB) SeedStyles(ctx context.Context, styles []catalog.Style) (bool, error) {
	n, err := db.CountStyles(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := db.ReplaceStyles(ctx, styles); err != nil {
		return false, err
	}
	return true, nil
}

func splitItems(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
