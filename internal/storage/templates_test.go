package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/meltforce/nextblock/internal/catalog"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "templates.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestSeedAndLoadBuiltin verifies that the built-in styles survive a round
// trip through SQLite in display order with identical day text.
func TestSeedAndLoadBuiltin(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)
	builtin := catalog.Builtin()

	seeded, err := db.SeedStyles(ctx, builtin.All())
	if err != nil {
		t.Fatalf("SeedStyles: %v", err)
	}
	if !seeded {
		t.Fatal("expected seed on empty database")
	}

	got, err := db.Catalog(ctx)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if !reflect.DeepEqual(got.Styles(), builtin.Styles()) {
		t.Errorf("styles = %v, want %v", got.Styles(), builtin.Styles())
	}
	for _, name := range builtin.Styles() {
		if got.Text(name) != builtin.Text(name) {
			t.Errorf("style %q text differs:\n%s\n---\n%s", name, got.Text(name), builtin.Text(name))
		}
	}
}

// TestSeedSkipsPopulated verifies that seeding never overwrites stored styles.
func TestSeedSkipsPopulated(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	custom := []catalog.Style{{
		Name: "Mobility",
		Days: []catalog.TemplateDay{{Title: "Day 1 – Flow", Items: []string{"Cat Cow 2x10"}}},
	}}
	if err := db.ReplaceStyles(ctx, custom); err != nil {
		t.Fatalf("ReplaceStyles: %v", err)
	}

	seeded, err := db.SeedStyles(ctx, catalog.Builtin().All())
	if err != nil {
		t.Fatalf("SeedStyles: %v", err)
	}
	if seeded {
		t.Error("seed ran on a populated database")
	}

	got, err := db.Catalog(ctx)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if !reflect.DeepEqual(got.Styles(), []string{"Mobility"}) {
		t.Errorf("styles = %v, want [Mobility]", got.Styles())
	}
}

// TestReplaceStyles verifies that a replace drops old styles and keeps
// days without items.
func TestReplaceStyles(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	if _, err := db.SeedStyles(ctx, catalog.Builtin().All()); err != nil {
		t.Fatal(err)
	}
	next := []catalog.Style{
		{Name: "Rest", Days: []catalog.TemplateDay{{Title: "Day 1 – Off"}}},
		{Name: "Empty"},
	}
	if err := db.ReplaceStyles(ctx, next); err != nil {
		t.Fatalf("ReplaceStyles: %v", err)
	}

	styles, err := db.ListStyles(ctx)
	if err != nil {
		t.Fatalf("ListStyles: %v", err)
	}
	if len(styles) != 2 {
		t.Fatalf("got %d styles, want 2", len(styles))
	}
	if styles[0].Name != "Rest" || len(styles[0].Days) != 1 || len(styles[0].Days[0].Items) != 0 {
		t.Errorf("styles[0] = %+v", styles[0])
	}
	if styles[1].Name != "Empty" || len(styles[1].Days) != 0 {
		t.Errorf("styles[1] = %+v", styles[1])
	}
}

// TestReplaceStylesRejectsInvalid verifies that invalid catalogs are not stored.
func TestReplaceStylesRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	bad := []catalog.Style{{Name: "A"}, {Name: "A"}}
	if err := db.ReplaceStyles(ctx, bad); err == nil {
		t.Fatal("expected error for duplicate style names")
	}
	n, err := db.CountStyles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("stored %d styles after rejected replace", n)
	}
}

// TestMigrationsIdempotent verifies that reopening an existing database
// does not fail on already-applied migrations.
func TestMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.db")
	for i := 0; i < 2; i++ {
		db, err := OpenSQLite(context.Background(), path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		db.Close()
	}
}

// TestRebind verifies placeholder rewriting per dialect.
func TestRebind(t *testing.T) {
	q := `INSERT INTO t (a, b) VALUES (?, ?)`
	if got := (&DB{dialect: SQLite}).rebind(q); got != q {
		t.Errorf("sqlite rebind = %q", got)
	}
	want := `INSERT INTO t (a, b) VALUES ($1, $2)`
	if got := (&DB{dialect: Postgres}).rebind(q); got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
}
