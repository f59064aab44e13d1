package notes

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/claude/liftnotes/internal/ingest"
	"github.com/claude/liftnotes/internal/models"
	"github.com/google/uuid"
)

// RecordWriter persists the final record list. Implemented by the export sinks.
type RecordWriter interface {
	Write(ctx context.Context, records []models.TrainingRecord) (int64, error)
}

// Provider runs the full pipeline: parse, consolidate, sort and (optionally) write.
type Provider struct {
	opts Options
	log  *slog.Logger
	flat bool
}

// NewProvider creates a Provider with fixed parser options.
func NewProvider(opts Options, log *slog.Logger) *Provider {
	return &Provider{opts: opts, log: log}
}

// Options returns the parser options this provider runs with.
func (p *Provider) Options() Options {
	return p.opts
}

// WithSkipDates returns a provider that skips exactly the given dates and keeps
// every other option.
func (p *Provider) WithSkipDates(dates []string) *Provider {
	opts := NewOptions(dates, p.opts.Markers)
	opts.OnIgnored = p.opts.OnIgnored
	return &Provider{opts: opts, log: p.log, flat: p.flat}
}

// WithConsolidation returns a provider that merges duplicate entries when on
// is true and emits one record per parsed set otherwise.
func (p *Provider) WithConsolidation(on bool) *Provider {
	return &Provider{opts: p.opts, log: p.log, flat: !on}
}

// Run parses r and returns records sorted by date, exercise and weight,
// consolidated unless the provider was built WithConsolidation(false).
func (p *Provider) Run(r io.Reader) (*ingest.Result, []models.TrainingRecord, error) {
	runID := uuid.NewString()

	opts := p.opts
	opts.OnIgnored = func(line string, reason IgnoreReason) {
		p.log.Debug("line ignored", "run_id", runID, "reason", string(reason), "line", line)
	}

	flat, stats, err := ParseReader(r, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing notes: %w", err)
	}

	var records []models.TrainingRecord
	if p.flat {
		records = append([]models.TrainingRecord{}, flat...)
	} else {
		records = Consolidate(flat)
	}
	models.SortRecords(records)

	result := &ingest.Result{
		RunID:               runID,
		LinesRead:           stats.Lines,
		LinesIgnored:        stats.Ignored,
		ExerciseLines:       stats.ExerciseLines,
		DatesSeen:           stats.Headers,
		DatesSkipped:        stats.SkippedHeaders,
		RecordsParsed:       len(flat),
		RecordsConsolidated: len(records),
	}
	return result, records, nil
}

// Convert runs the pipeline and hands the records to w. A write failure is
// returned as is; nothing is retried.
func (p *Provider) Convert(ctx context.Context, r io.Reader, w RecordWriter) (*ingest.Result, []models.TrainingRecord, error) {
	result, records, err := p.Run(r)
	if err != nil {
		return nil, nil, err
	}

	written, err := w.Write(ctx, records)
	if err != nil {
		return result, records, fmt.Errorf("writing records: %w", err)
	}
	result.RecordsWritten = written
	result.Message = fmt.Sprintf("processed %d workout entries", len(records))

	p.log.Info("conversion complete",
		"run_id", result.RunID,
		"lines", result.LinesRead,
		"ignored", result.LinesIgnored,
		"flat_records", result.RecordsParsed,
		"records", result.RecordsConsolidated,
		"written", result.RecordsWritten,
	)
	return result, records, nil
}
