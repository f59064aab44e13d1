package mcp

import (
	"context"
	"strings"

	"github.com/claude/liftnotes/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
)

var toolParseTrainingNotes = mcp.NewTool("parse_training_notes",
	mcp.WithDescription("Convert free-form training notes into structured records. Lines start with a MM/DD/YY date header; exercise lines hold a name followed by set tokens like 12x60kg or 12x12x45lb, with an optional (note). Returns records sorted by date, exercise and weight."),
	mcp.WithString("text", mcp.Required(), mcp.Description("The raw training log")),
	mcp.WithString("skip_dates", mcp.Description("Comma separated MM/DD/YY dates to drop entirely. Defaults to the server's configured list.")),
	mcp.WithBoolean("consolidate", mcp.Description("Merge identical entries of a day into one record with a set count. Defaults to true."), mcp.DefaultBool(true)),
)

func (h *handlers) parseTrainingNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var skipDates []string
	if raw, ok := req.GetArguments()["skip_dates"].(string); ok {
		skipDates = splitDates(raw)
		if err := config.ValidateSkipDates(skipDates); err != nil {
			return mcp.NewToolResultError("invalid skip_dates: " + err.Error()), nil
		}
	}
	consolidate := req.GetBool("consolidate", true)

	conv, err := h.conv.Convert(ctx, text, skipDates, consolidate)
	if err != nil {
		h.log.Error("mcp parse_training_notes", "error", err)
		return mcp.NewToolResultError("conversion failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(conv)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// splitDates parses a comma separated date list into a non-nil slice, so an
// explicit empty argument clears the configured skip dates.
func splitDates(s string) []string {
	dates := []string{}
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dates = append(dates, d)
		}
	}
	return dates
}
