package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/nextblock/internal/catalog"
)

func (h *handlers) templates(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	styles, err := h.planner.Styles(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]*catalog.Template, 0, len(styles))
	for _, name := range styles {
		tpl, err := h.planner.Template(ctx, name)
		if err != nil {
			return nil, err
		}
		all = append(all, tpl)
	}

	data, err := json.Marshal(all)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
