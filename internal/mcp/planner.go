package mcp

import (
	"context"
	"fmt"

	"github.com/meltforce/nextblock/internal/catalog"
	"github.com/meltforce/nextblock/internal/generator"
)

// Planner abstracts block generation for MCP tools. Both Local (in-process)
// and HTTPClient (remote via REST API) satisfy this interface. Template
// returns catalog.ErrUnknownStyle for a style the catalog does not have.
type Planner interface {
	Generate(ctx context.Context, req generator.Request) (*generator.Result, error)
	Styles(ctx context.Context) ([]string, error)
	Template(ctx context.Context, style string) (*catalog.Template, error)
}

// Local runs the generator in-process.
type Local struct {
	Gen *generator.Generator
}

// Compile-time check: Local satisfies Planner.
var _ Planner = Local{}

func (l Local) Generate(ctx context.Context, req generator.Request) (*generator.Result, error) {
	return l.Gen.Generate(ctx, req)
}

func (l Local) Styles(ctx context.Context) ([]string, error) {
	c, err := l.Gen.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Styles(), nil
}

func (l Local) Template(ctx context.Context, style string) (*catalog.Template, error) {
	c, err := l.Gen.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	tpl, ok := c.Template(style)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownStyle, style)
	}
	return &tpl, nil
}
