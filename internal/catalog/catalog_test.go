package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meltforce/nextblock/internal/parser"
)

// TestBuiltinStyles verifies the built-in styles and their display order.
func TestBuiltinStyles(t *testing.T) {
	got := Builtin().Styles()
	want := []string{"Strength only", "Hybrid", "HYROX", "Strength + running"}
	if len(got) != len(want) {
		t.Fatalf("styles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("styles[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestHYROXTemplateParses checks the template example: the HYROX text parses
// into five days with the catalog's titles in order.
func TestHYROXTemplateParses(t *testing.T) {
	c := Builtin()
	style, ok := c.Style("HYROX")
	if !ok {
		t.Fatal("HYROX style missing")
	}
	b := parser.Parse(c.Text("HYROX"))
	if len(b.Days) != 5 {
		t.Fatalf("days = %d, want 5", len(b.Days))
	}
	for i, d := range style.Days {
		if b.Days[i].Title != d.Title {
			t.Errorf("day %d title = %q, want %q", i, b.Days[i].Title, d.Title)
		}
		if len(b.Days[i].Items) != len(d.Items) {
			t.Errorf("day %d items = %d, want %d", i, len(b.Days[i].Items), len(d.Items))
		}
	}
}

// TestEveryBuiltinStyleRoundTrips verifies each template's text parses back
// into the same number of days.
func TestEveryBuiltinStyleRoundTrips(t *testing.T) {
	c := Builtin()
	for _, s := range c.All() {
		if got := len(parser.Parse(c.Text(s.Name)).Days); got != len(s.Days) {
			t.Errorf("%s: parsed days = %d, want %d", s.Name, got, len(s.Days))
		}
	}
}

// TestText verifies the seed text layout: blank line between days, none at the end.
func TestText(t *testing.T) {
	c, err := New([]Style{{Name: "Mini", Days: []TemplateDay{
		{Title: "Day 1", Items: []string{"Squat 3x5"}},
		{Title: "Day 2", Items: []string{"Bench 3x5", "Row 3x8"}},
	}}})
	if err != nil {
		t.Fatal(err)
	}
	want := "Day 1\nSquat 3x5\n\nDay 2\nBench 3x5\nRow 3x8"
	if got := c.Text("Mini"); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if got := c.Text("Unknown"); got != "" {
		t.Errorf("Text(Unknown) = %q, want empty", got)
	}
}

// TestTemplate verifies the lookup pairs a style with its seed text.
func TestTemplate(t *testing.T) {
	c := Builtin()
	tpl, ok := c.Template("Hybrid")
	if !ok {
		t.Fatal("Hybrid template missing")
	}
	if tpl.Name != "Hybrid" {
		t.Errorf("name = %q, want Hybrid", tpl.Name)
	}
	if tpl.Text != c.Text("Hybrid") {
		t.Errorf("text = %q, want %q", tpl.Text, c.Text("Hybrid"))
	}
	if _, ok := c.Template("Pilates"); ok {
		t.Error("expected unknown style to be missing")
	}
}

// TestNewValidation verifies that nameless styles, duplicates and untitled
// days are rejected.
func TestNewValidation(t *testing.T) {
	cases := map[string][]Style{
		"missing name": {{Name: " "}},
		"duplicate":    {{Name: "A"}, {Name: "A"}},
		"untitled day": {{Name: "A", Days: []TemplateDay{{Title: ""}}}},
	}
	for name, styles := range cases {
		if _, err := New(styles); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

// TestLoadFile verifies a custom catalog file replaces the built-in styles.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `
styles:
  - name: Powerlifting
    days:
      - title: Day 1 – Squat
        items:
          - Back Squat 5x3 @ RPE8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	src := &FileSource{Path: path}
	c, err := src.Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Styles(); len(got) != 1 || got[0] != "Powerlifting" {
		t.Errorf("styles = %v, want [Powerlifting]", got)
	}
	if !strings.HasPrefix(c.Text("Powerlifting"), "Day 1 – Squat\n") {
		t.Errorf("text = %q", c.Text("Powerlifting"))
	}
}

// TestLoadInvalidYAML verifies malformed YAML is reported.
func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(strings.NewReader("styles: [unclosed")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

// TestLoadFileMissing verifies a missing file is an error.
func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/templates.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
