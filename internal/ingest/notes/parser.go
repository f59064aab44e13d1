package notes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/claude/liftnotes/internal/models"
)

// maxLineBytes bounds a single log line. Longer lines are dropped as
// ReasonTooLong without being buffered.
const maxLineBytes = 1 << 20

// previewBytes is how much of an over-long line OnIgnored gets to see.
const previewBytes = 80

// Stats counts what a parse run saw.
type Stats struct {
	Lines          int `json:"lines"`
	Headers        int `json:"headers"`
	SkippedHeaders int `json:"skipped_headers"`
	ExerciseLines  int `json:"exercise_lines"`
	Ignored        int `json:"ignored"`
}

type parseState struct {
	active  *models.DateHeader
	records []models.TrainingRecord
	stats   Stats
}

// Parse converts a raw training log into flat per-set records in document order.
// Malformed lines never fail the parse; they are dropped.
func Parse(text string, opts Options) []models.TrainingRecord {
	records, _ := ParseWithStats(text, opts)
	return records
}

// ParseWithStats is Parse plus line counters.
func ParseWithStats(text string, opts Options) ([]models.TrainingRecord, Stats) {
	var st parseState
	for _, line := range strings.Split(text, "\n") {
		if len(line) > maxLineBytes {
			st = opts.dropLong(st, line[:previewBytes])
			continue
		}
		st = opts.step(st, line)
	}
	return st.records, st.stats
}

// ParseReader streams lines from r and agrees with ParseWithStats on the same
// input. The only error is a read failure; an over-long line is dropped.
func ParseReader(r io.Reader, opts Options) ([]models.TrainingRecord, Stats, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		st      parseState
		line    []byte
		tooLong bool
		preview string
	)
	for {
		frag, err := br.ReadSlice('\n')
		if err == nil {
			frag = frag[:len(frag)-1]
		}
		switch {
		case tooLong:
		case len(line)+len(frag) > maxLineBytes:
			tooLong = true
			preview = string(append(line, frag...)[:previewBytes])
			line = line[:0]
		default:
			line = append(line, frag...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, st.stats, fmt.Errorf("reading notes: %w", err)
		}

		if tooLong {
			st = opts.dropLong(st, preview)
		} else {
			st = opts.step(st, string(line))
		}
		line, tooLong, preview = line[:0], false, ""

		if err != nil {
			return st.records, st.stats, nil
		}
	}
}

// dropLong records an over-long line as ignored. preview is its first bytes.
func (o Options) dropLong(st parseState, preview string) parseState {
	st.stats.Lines++
	st.stats.Ignored++
	if o.OnIgnored != nil {
		o.OnIgnored(preview, ReasonTooLong)
	}
	return st
}

func (o Options) step(st parseState, raw string) parseState {
	line := strings.TrimSpace(raw)
	if line == "" {
		return st
	}
	st.stats.Lines++

	c := Classify(line, st.active, o)
	switch c.Kind {
	case KindDateHeader:
		h := c.Header
		st.active = &h
		st.stats.Headers++
		if o.Skipped(h.Raw()) {
			st.stats.SkippedHeaders++
		}
	case KindExercise:
		st.stats.ExerciseLines++
		st.records = append(st.records, ExtractEntries(line, *st.active)...)
	default:
		st.stats.Ignored++
		if o.OnIgnored != nil {
			o.OnIgnored(line, c.Reason)
		}
	}
	return st
}
