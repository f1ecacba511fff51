package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(p Planner, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("NextBlock", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("NextBlock training block generator. Turn a client's previous block (or a week template) plus coach feedback into the next block, with progressed sets, reps, RPE and load and swap suggestions for disliked or injury-risky exercises."),
	)

	h := &handlers{planner: p, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGenerateNextBlock, Handler: h.generateNextBlock},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolGetTemplate, Handler: h.getTemplate},
	)

	s.AddResources(
		server.ServerResource{Resource: resTemplates, Handler: h.templates},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	planner Planner
	log     *slog.Logger
}

var resTemplates = mcp.NewResource(
	"nextblock://templates",
	"Week Templates",
	mcp.WithResourceDescription("Every week template style with its days and seed text, in display order"),
	mcp.WithMIMEType("application/json"),
)
