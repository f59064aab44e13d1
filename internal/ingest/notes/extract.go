package notes

import (
	"regexp"
	"strings"

	"github.com/claude/liftnotes/internal/models"
)

var (
	// setTokenRe matches one set token: 12x60kg, 12x12x17.5lb
	setTokenRe = regexp.MustCompile(`(?:\d+x)+[\d.]+(?:kg|lb)`)

	// trailingFragmentRe strips rep fragments the name picked up: "Leg press 12x100 12x200"
	trailingFragmentRe = regexp.MustCompile(`(?:^|\s+)\d+x.*$`)

	// noteRe captures the first parenthesized note: (slow)
	noteRe = regexp.MustCompile(`\(([^)]+)\)`)
)

// ExtractEntries turns an exercise line into one record per decoded set, dated
// with the header's ISO date. Tokens that fail to decode are dropped on their
// own; a line without a usable exercise name produces nothing.
func ExtractEntries(line string, header models.DateHeader) []models.TrainingRecord {
	locs := setTokenRe.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	name := strings.TrimSpace(line[:locs[0][0]])
	name = strings.TrimSpace(trailingFragmentRe.ReplaceAllString(name, ""))
	if name == "" {
		return nil
	}

	var note string
	if m := noteRe.FindStringSubmatch(line[locs[0][0]:]); m != nil {
		note = m[1]
	}

	date := header.ISO()
	var records []models.TrainingRecord
	for _, loc := range locs {
		for _, set := range ParseSetNotation(line[loc[0]:loc[1]]) {
			records = append(records, models.TrainingRecord{
				Date:       date,
				Exercise:   name,
				Weight:     set.Weight,
				WeightUnit: set.Unit,
				Reps:       set.Reps,
				Sets:       1,
				Notes:      note,
			})
		}
	}
	return records
}
