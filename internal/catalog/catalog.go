// Package catalog holds the week templates a block can be seeded from when
// there is no previous block to progress.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var builtinYAML []byte

// DefaultStyle is the style a new block starts from when none is chosen.
const DefaultStyle = "Strength only"

// ErrUnknownStyle reports a style name the catalog does not have.
var ErrUnknownStyle = errors.New("unknown style")

// Style is a named week template.
type Style struct {
	Name string        `yaml:"name" json:"name"`
	Days []TemplateDay `yaml:"days" json:"days"`
}

// TemplateDay is one day skeleton. Items are exercise lines in the parser's
// grammar.
type TemplateDay struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

type file struct {
	Styles []Style `yaml:"styles"`
}

// Catalog is an ordered, read-only set of styles.
type Catalog struct {
	styles []Style
	byName map[string]int
}

// New builds a catalog from styles in display order. Every style needs a
// unique name and every day a title.
func New(styles []Style) (*Catalog, error) {
	c := &Catalog{styles: styles, byName: make(map[string]int, len(styles))}
	for i, s := range styles {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("style %d: name is required", i)
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("style %q: duplicate name", s.Name)
		}
		for j, d := range s.Days {
			if strings.TrimSpace(d.Title) == "" {
				return nil, fmt.Errorf("style %q day %d: title is required", s.Name, j)
			}
		}
		c.byName[s.Name] = i
	}
	return c, nil
}

// Load reads a catalog from YAML.
func Load(r io.Reader) (*Catalog, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(f.Styles)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var builtin = sync.OnceValue(func() *Catalog {
	c, err := Load(strings.NewReader(string(builtinYAML)))
	if err != nil {
		panic("catalog: embedded templates.yaml: " + err.Error())
	}
	return c
})

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	return builtin()
}

// Styles returns the style names in display order.
func (c *Catalog) Styles() []string {
	names := make([]string, len(c.styles))
	for i, s := range c.styles {
		names[i] = s.Name
	}
	return names
}

// All returns every style in display order.
func (c *Catalog) All() []Style {
	return append([]Style(nil), c.styles...)
}

// Style looks up a style by exact name.
func (c *Catalog) Style(name string) (Style, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Style{}, false
	}
	return c.styles[i], true
}

// Text renders a style as block text: each day's title and items followed by
// a blank line, trimmed at the ends. Unknown styles yield "".
func (c *Catalog) Text(name string) string {
	s, ok := c.Style(name)
	if !ok {
		return ""
	}
	var out []string
	for _, d := range s.Days {
		out = append(out, d.Title)
		out = append(out, d.Items...)
		out = append(out, "")
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// Template is a style together with its rendered seed text.
type Template struct {
	Style
	Text string `json:"text"`
}

// Template looks up a style and renders its seed text.
func (c *Catalog) Template(name string) (Template, bool) {
	s, ok := c.Style(name)
	if !ok {
		return Template{}, false
	}
	return Template{Style: s, Text: c.Text(name)}, true
}

// Source supplies a catalog. Implementations may read it from disk or a
// database on every call.
type Source interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

// Static serves a fixed catalog.
type Static struct {
	C *Catalog
}

func (s Static) Catalog(context.Context) (*Catalog, error) {
	return s.C, nil
}

// FileSource reads a YAML catalog once, on first use.
type FileSource struct {
	Path string

	once sync.Once
	c    *Catalog
	err  error
}

func (s *FileSource) Catalog(context.Context) (*Catalog, error) {
	s.once.Do(func() {
		s.c, s.err = LoadFile(s.Path)
	})
	return s.c, s.err
}
