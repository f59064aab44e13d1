package notes

import (
	"maps"
	"slices"
	"strings"
)

// DefaultMarkers flag lines that log non-strength work: cardio, sauna,
// stair climbing, isometric wall holds, ab work and resistance bands.
var DefaultMarkers = []string{"sauna", "run", "stairs", "butterfly on wall", "abs", "band"}

// Options is the fixed configuration for one parse run.
type Options struct {
	// SkipDates holds MM/DD/YY dates whose lines are dropped entirely.
	SkipDates map[string]struct{}
	// Markers are lower-case substrings that mark a line as non-strength.
	Markers []string
	// OnIgnored, when set, observes every dropped non-header line.
	OnIgnored func(line string, reason IgnoreReason)
}

// NewOptions builds Options from raw config values. A nil or empty markers
// slice selects DefaultMarkers.
func NewOptions(skipDates, markers []string) Options {
	opts := Options{SkipDates: make(map[string]struct{}, len(skipDates))}
	for _, d := range skipDates {
		if d = strings.TrimSpace(d); d != "" {
			opts.SkipDates[d] = struct{}{}
		}
	}
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	for _, m := range markers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			opts.Markers = append(opts.Markers, m)
		}
	}
	return opts
}

// DefaultOptions skips no dates and uses DefaultMarkers.
func DefaultOptions() Options {
	return NewOptions(nil, nil)
}

// Skipped reports whether the raw MM/DD/YY date is excluded.
func (o Options) Skipped(rawDate string) bool {
	_, ok := o.SkipDates[rawDate]
	return ok
}

// SkipDateList returns the skip dates in lexical order.
func (o Options) SkipDateList() []string {
	return slices.Sorted(maps.Keys(o.SkipDates))
}

// Settings is the reportable view of Options.
type Settings struct {
	SkipDates []string `json:"skip_dates"`
	Markers   []string `json:"markers"`
}

// Settings returns the skip dates and markers in effect.
func (o Options) Settings() Settings {
	dates := o.SkipDateList()
	if dates == nil {
		dates = []string{}
	}
	return Settings{
		SkipDates: dates,
		Markers:   slices.Clone(o.Markers),
	}
}
