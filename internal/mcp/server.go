// Package mcp exposes the training notes converter as MCP tools and resources.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(conv Converter, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftnotes", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftnotes converts free-form strength training notes into structured records. Pass the raw log text to parse_training_notes; read liftnotes://sample_notes for an example of the accepted format."),
	)

	h := &handlers{conv: conv, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolParseTrainingNotes, Handler: h.parseTrainingNotes},
	)

	s.AddResources(
		server.ServerResource{Resource: resSampleNotes, Handler: h.sampleNotes},
		server.ServerResource{Resource: resParserConfig, Handler: h.parserConfig},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	conv Converter
	log  *slog.Logger
}

// --- Resource definitions ---

var resSampleNotes = mcp.NewResource(
	"liftnotes://sample_notes",
	"Sample Notes",
	mcp.WithResourceDescription("A real training log in the accepted free-form format"),
	mcp.WithMIMEType("text/plain"),
)

var resParserConfig = mcp.NewResource(
	"liftnotes://parser_config",
	"Parser Config",
	mcp.WithResourceDescription("Dates skipped and non-strength markers ignored by the parser"),
	mcp.WithMIMEType("application/json"),
)
