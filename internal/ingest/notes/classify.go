package notes

import (
	"regexp"
	"strings"

	"github.com/claude/liftnotes/internal/models"
)

var (
	// dateHeaderRe matches: 01/30/26 Push
	dateHeaderRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{2})(.*)$`)

	// setShapeRe matches anything that looks like logged sets: 12x60kg, 12x100 12x400lb
	setShapeRe = regexp.MustCompile(`\d+x\d+.*?(?:kg|lb)`)
)

// LineKind is the classifier's verdict for one trimmed line.
type LineKind uint8

const (
	KindIgnored LineKind = iota
	KindDateHeader
	KindExercise
)

// IgnoreReason says why a line was dropped.
type IgnoreReason string

const (
	ReasonNone     IgnoreReason = ""
	ReasonNoDate   IgnoreReason = "no active date"
	ReasonSkipDate IgnoreReason = "skipped date"
	ReasonMarker   IgnoreReason = "non-strength marker"
	ReasonNoSets   IgnoreReason = "no set data"
	ReasonTooLong  IgnoreReason = "line too long"
)

// Classification is the result of Classify.
type Classification struct {
	Kind LineKind
	// Header is set for KindDateHeader.
	Header models.DateHeader
	// Reason is set for KindIgnored.
	Reason IgnoreReason
}

// Classify decides what a trimmed, non-empty line is. The first matching rule wins:
// date header, no/skipped active date, non-strength marker, no set data, exercise.
func Classify(line string, active *models.DateHeader, opts Options) Classification {
	if h, ok := parseDateHeader(line); ok {
		return Classification{Kind: KindDateHeader, Header: h}
	}

	if active == nil {
		return ignored(ReasonNoDate)
	}
	if opts.Skipped(active.Raw()) {
		return ignored(ReasonSkipDate)
	}

	lower := strings.ToLower(line)
	for _, m := range opts.Markers {
		if strings.Contains(lower, m) {
			return ignored(ReasonMarker)
		}
	}

	if !setShapeRe.MatchString(line) {
		return ignored(ReasonNoSets)
	}
	return Classification{Kind: KindExercise}
}

func ignored(reason IgnoreReason) Classification {
	return Classification{Kind: KindIgnored, Reason: reason}
}

func parseDateHeader(line string) (models.DateHeader, bool) {
	m := dateHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return models.DateHeader{}, false
	}
	return models.DateHeader{
		Month: m[1],
		Day:   m[2],
		Year:  m[3],
		Label: strings.TrimSpace(m[4]),
	}, true
}
