// Package export serializes training records to the one output artifact of a run.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/claude/liftnotes/internal/config"
	"github.com/claude/liftnotes/internal/models"
	"github.com/claude/liftnotes/internal/storage"
)

var (
	// ErrUnknownFormat is returned by Open for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrNoDSN is returned by Open when a database sink has no destination.
	ErrNoDSN = errors.New("missing database destination")
)

// Header is the CSV header row.
var Header = []string{"date", "exercise", "weight", "reps", "sets", "notes"}

// Sink writes a complete record list. Returns the number of records written.
type Sink interface {
	Write(ctx context.Context, records []models.TrainingRecord) (int64, error)
}

// Row is the exported shape of a record: weight and unit merged into one field.
type Row struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Weight   string `json:"weight"`
	Reps     int    `json:"reps"`
	Sets     int    `json:"sets"`
	Notes    string `json:"notes"`
}

// Rows converts records to their exported shape.
func Rows(records []models.TrainingRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{
			Date:     r.Date,
			Exercise: r.Exercise,
			Weight:   r.WeightLabel(),
			Reps:     r.Reps,
			Sets:     r.Sets,
			Notes:    r.Notes,
		})
	}
	return rows
}

// WriteCSV writes the header and one line per record.
func WriteCSV(w io.Writer, records []models.TrainingRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range Rows(records) {
		line := []string{
			row.Date,
			row.Exercise,
			row.Weight,
			strconv.Itoa(row.Reps),
			strconv.Itoa(row.Sets),
			row.Notes,
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []models.TrainingRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Rows(records)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// StreamSink encodes records to a file, or to Stdout when Path is "-".
type StreamSink struct {
	Path   string
	Stdout io.Writer
	Encode func(io.Writer, []models.TrainingRecord) error
}

// Write creates (or truncates) the destination and encodes the records in one pass.
func (s *StreamSink) Write(_ context.Context, records []models.TrainingRecord) (int64, error) {
	if s.Path == "-" || s.Path == "" {
		if err := s.Encode(s.Stdout, records); err != nil {
			return 0, err
		}
		return int64(len(records)), nil
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", s.Path, err)
	}
	if err := s.Encode(f, records); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", s.Path, err)
	}
	return int64(len(records)), nil
}

// Open selects the sink for the configured output. stdout receives csv/json
// output when the path is "-".
func Open(out config.OutputConfig, stdout io.Writer) (Sink, error) {
	switch out.Format {
	case config.FormatCSV:
		return &StreamSink{Path: out.Path, Stdout: stdout, Encode: WriteCSV}, nil
	case config.FormatJSON:
		return &StreamSink{Path: out.Path, Stdout: stdout, Encode: WriteJSON}, nil
	case config.FormatSQLite:
		if out.Path == "" || out.Path == "-" {
			return nil, fmt.Errorf("sqlite output: %w", ErrNoDSN)
		}
		return storage.NewSQLiteSink(out.Path), nil
	case config.FormatPostgres:
		if out.DSN == "" {
			return nil, fmt.Errorf("postgres output: %w", ErrNoDSN)
		}
		return storage.NewPostgresSink(out.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, out.Format)
	}
}
