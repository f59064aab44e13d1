package notes

import "github.com/claude/liftnotes/internal/models"

// consolidationKey groups identical sets. Weight is compared exactly.
type consolidationKey struct {
	date     string
	exercise string
	weight   float64
	unit     models.WeightUnit
	reps     int
	notes    string
}

func keyOf(r models.TrainingRecord) consolidationKey {
	return consolidationKey{
		date:     r.Date,
		exercise: r.Exercise,
		weight:   r.Weight,
		unit:     r.WeightUnit,
		reps:     r.Reps,
		notes:    r.Notes,
	}
}

// Consolidate folds records sharing (date, exercise, weight, unit, reps, notes)
// into one record whose Sets counts them. Output keeps first-occurrence order.
// The input slice is not modified.
func Consolidate(records []models.TrainingRecord) []models.TrainingRecord {
	out := make([]models.TrainingRecord, 0, len(records))
	index := make(map[consolidationKey]int, len(records))

	for _, r := range records {
		k := keyOf(r)
		if i, ok := index[k]; ok {
			out[i].Sets++
			continue
		}
		index[k] = len(out)
		r.Sets = 1
		out = append(out, r)
	}
	return out
}
