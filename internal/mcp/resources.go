package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftnotes/internal/sample"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) sampleNotes(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     sample.Notes(),
		},
	}, nil
}

func (h *handlers) parserConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	settings, err := h.conv.Settings(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(settings)
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
