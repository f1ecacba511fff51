package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/nextblock/internal/catalog"
	"github.com/meltforce/nextblock/internal/generator"
)

// --- Tool definitions ---

var toolGenerateNextBlock = mcp.NewTool("generate_next_block",
	mcp.WithDescription("Generate a client's next training block. Progresses every exercise of the previous block by the reported difficulty, flags disliked or injury-risky exercises with swap suggestions, and returns the printable plan text."),
	mcp.WithString("previous_block", mcp.Description("Previous block as plain text: 'Day N' headers followed by lines like 'Back Squat 4x6 @ RPE7 100kg'. Leave empty with mode=template to start from a week template.")),
	mcp.WithString("style", mcp.Description("Week template style (see list_templates). Used for the header and, in template mode, as the seed. Defaults to 'Strength only'.")),
	mcp.WithString("mode", mcp.Description("'template' seeds from the style when previous_block is empty; 'progress' never does. Defaults to template."), mcp.Enum("template", "progress")),
	mcp.WithString("difficulty", mcp.Description("How the last block felt. Defaults to just-right."), mcp.Enum("easy", "just-right", "hard")),
	mcp.WithString("enjoyment", mcp.Description("How much the client enjoyed it. Defaults to neutral."), mcp.Enum("loved", "neutral", "disliked")),
	mcp.WithString("disliked", mcp.Description("Comma or newline separated exercise keywords to swap out (e.g. 'squat, burpee')")),
	mcp.WithString("injuries", mcp.Description("Free-text injury note (e.g. 'knee pain'); knee, back and shoulder keywords flag risky exercises")),
	mcp.WithString("notes", mcp.Description("Coach notes appended to the plan")),
	mcp.WithString("client", mcp.Description("Client name for the header and download filename")),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the available week template styles in display order."),
)

var toolGetTemplate = mcp.NewTool("get_template",
	mcp.WithDescription("Get one week template: its days and the seed text that template mode would progress."),
	mcp.WithString("style", mcp.Required(), mcp.Description("Style name, exactly as returned by list_templates")),
)

// --- Tool handlers ---

func (h *handlers) generateNextBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	greq := generator.Request{
		Client:        req.GetString("client", ""),
		Style:         req.GetString("style", catalog.DefaultStyle),
		Mode:          req.GetString("mode", ""),
		PreviousBlock: req.GetString("previous_block", ""),
		Difficulty:    req.GetString("difficulty", ""),
		Enjoyment:     req.GetString("enjoyment", ""),
		Disliked:      req.GetString("disliked", ""),
		Injuries:      req.GetString("injuries", ""),
		Notes:         req.GetString("notes", ""),
	}

	res, err := h.planner.Generate(ctx, greq)
	if err != nil {
		h.log.Error("mcp generate_next_block", "error", err)
		return mcp.NewToolResultError("generate failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(res.Text), nil
}

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	styles, err := h.planner.Styles(ctx)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(styles)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	style, err := req.RequireString("style")
	if err != nil {
		return mcp.NewToolResultError("style parameter is required"), nil
	}

	tpl, err := h.planner.Template(ctx, style)
	if errors.Is(err, catalog.ErrUnknownStyle) {
		return mcp.NewToolResultError("unknown style: " + style), nil
	}
	if err != nil {
		h.log.Error("mcp get_template", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(tpl)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
