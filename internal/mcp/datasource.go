package mcp

import (
	"context"
	"strings"

	"github.com/claude/liftnotes/internal/export"
	"github.com/claude/liftnotes/internal/ingest"
	"github.com/claude/liftnotes/internal/ingest/notes"
)

// Conversion is the outcome of converting one training log.
type Conversion struct {
	Result  *ingest.Result `json:"result"`
	Records []export.Row   `json:"records"`
}

// Converter abstracts where conversion runs. Both Local (in process) and
// HTTPClient (remote via REST API) satisfy this interface.
type Converter interface {
	// Convert parses text. A nil skipDates keeps the configured list.
	Convert(ctx context.Context, text string, skipDates []string, consolidate bool) (*Conversion, error)
	Settings(ctx context.Context) (notes.Settings, error)
}

// Local converts in process with a fixed provider.
type Local struct {
	provider *notes.Provider
}

// Compile-time check: *Local satisfies Converter.
var _ Converter = (*Local)(nil)

// NewLocal wraps a provider as a Converter.
func NewLocal(p *notes.Provider) *Local {
	return &Local{provider: p}
}

func (l *Local) Convert(_ context.Context, text string, skipDates []string, consolidate bool) (*Conversion, error) {
	p := l.provider.WithConsolidation(consolidate)
	if skipDates != nil {
		p = p.WithSkipDates(skipDates)
	}
	result, records, err := p.Run(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return &Conversion{Result: result, Records: export.Rows(records)}, nil
}

func (l *Local) Settings(_ context.Context) (notes.Settings, error) {
	return l.provider.Options().Settings(), nil
}
