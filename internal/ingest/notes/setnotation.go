package notes

import (
	"math"
	"strconv"
	"strings"

	"github.com/claude/liftnotes/internal/models"
)

// ParseSetNotation decodes a single set token such as "12x12x45lb" into one
// triple per rep count, all sharing the trailing weight and unit.
// "12x12x45lb" -> [(12, 45, lb), (12, 45, lb)]
//
// Any malformed token (missing unit, fewer than two components, non-numeric
// component) yields nil.
func ParseSetNotation(token string) []models.SetTriple {
	token = strings.TrimSpace(token)

	var unit models.WeightUnit
	switch {
	case strings.HasSuffix(token, string(models.UnitKg)):
		unit = models.UnitKg
	case strings.HasSuffix(token, string(models.UnitLb)):
		unit = models.UnitLb
	default:
		return nil
	}

	body := strings.TrimSpace(token[:len(token)-len(unit)])
	parts := strings.Split(body, "x")
	if len(parts) < 2 {
		return nil
	}

	weight, ok := parseWeight(parts[len(parts)-1])
	if !ok {
		return nil
	}

	sets := make([]models.SetTriple, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		reps, err := strconv.Atoi(p)
		if err != nil || reps < 0 {
			return nil
		}
		sets = append(sets, models.SetTriple{Reps: reps, Weight: weight, Unit: unit})
	}
	return sets
}

// parseWeight accepts plain non-negative decimals ("45", "17.5", "0").
func parseWeight(s string) (float64, bool) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, false
	}
	return w, true
}
