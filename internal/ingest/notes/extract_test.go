package notes

import (
	"testing"

	"github.com/claude/liftnotes/internal/models"
)

var headerJan30 = models.DateHeader{Month: "01", Day: "30", Year: "26", Label: "Push"}

// TestExtractEntriesMultipleTokens verifies the barbell row example: two tokens
// sharing one note expand into three flat sets.
func TestExtractEntriesMultipleTokens(t *testing.T) {
	got := ExtractEntries("Barbell row 12x60kg 12x12x80kg (slow)", headerJan30)
	want := []models.TrainingRecord{
		{Date: "2026-01-30", Exercise: "Barbell row", Weight: 60, WeightUnit: models.UnitKg, Reps: 12, Sets: 1, Notes: "slow"},
		{Date: "2026-01-30", Exercise: "Barbell row", Weight: 80, WeightUnit: models.UnitKg, Reps: 12, Sets: 1, Notes: "slow"},
		{Date: "2026-01-30", Exercise: "Barbell row", Weight: 80, WeightUnit: models.UnitKg, Reps: 12, Sets: 1, Notes: "slow"},
	}
	if len(got) != len(want) {
		t.Fatalf("records = %d, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestExtractEntriesBodyweight verifies a zero weight is a real set, not a
// missing value.
func TestExtractEntriesBodyweight(t *testing.T) {
	got := ExtractEntries("Pushups 20x0kg", headerJan30)
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
	r := got[0]
	if r.Exercise != "Pushups" || r.Reps != 20 || r.Weight != 0 || r.WeightUnit != models.UnitKg {
		t.Errorf("record = %+v, want Pushups 20x0kg", r)
	}
	if r.Notes != "" {
		t.Errorf("notes = %q, want empty", r.Notes)
	}
}

// TestExtractEntriesNameCleanup verifies unitless rep fragments before the first
// real token are stripped from the exercise name.
func TestExtractEntriesNameCleanup(t *testing.T) {
	got := ExtractEntries("Leg press 12x100 12x200 12x300 12x400lb one leg 12x200lb 12x300lb", headerJan30)
	if len(got) != 3 {
		t.Fatalf("records = %d, want 3", len(got))
	}
	for _, r := range got {
		if r.Exercise != "Leg press" {
			t.Errorf("exercise = %q, want %q", r.Exercise, "Leg press")
		}
	}
	if got[0].Weight != 400 || got[1].Weight != 200 || got[2].Weight != 300 {
		t.Errorf("weights = %v/%v/%v, want 400/200/300", got[0].Weight, got[1].Weight, got[2].Weight)
	}
}

// TestExtractEntriesFirstNoteOnly verifies only the first parenthesized group
// becomes the note.
func TestExtractEntriesFirstNoteOnly(t *testing.T) {
	got := ExtractEntries("Barbell curl 12x12x12x45lb (slowl) (bar not counted)", headerJan30)
	if len(got) != 3 {
		t.Fatalf("records = %d, want 3", len(got))
	}
	if got[0].Notes != "slowl" {
		t.Errorf("notes = %q, want %q", got[0].Notes, "slowl")
	}
}

// TestExtractEntriesNoteBeforeToken verifies a parenthesized group inside the
// exercise name is not taken as the note.
func TestExtractEntriesNoteBeforeToken(t *testing.T) {
	got := ExtractEntries("Row (machine) 12x40kg", headerJan30)
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
	if got[0].Exercise != "Row (machine)" {
		t.Errorf("exercise = %q, want %q", got[0].Exercise, "Row (machine)")
	}
	if got[0].Notes != "" {
		t.Errorf("notes = %q, want empty", got[0].Notes)
	}
}

// TestExtractEntriesEmptyName verifies a line that starts with its sets is dropped.
func TestExtractEntriesEmptyName(t *testing.T) {
	if got := ExtractEntries("12x12x45lb (slow)", headerJan30); len(got) != 0 {
		t.Errorf("records = %+v, want none", got)
	}
	if got := ExtractEntries("   12x100 12x60kg", headerJan30); len(got) != 0 {
		t.Errorf("records = %+v, want none for fragment-only name", got)
	}
}

// TestExtractEntriesBadTokenIsolated verifies an undecodable token drops only
// its own sets.
func TestExtractEntriesBadTokenIsolated(t *testing.T) {
	got := ExtractEntries("Curl 12x1.2.5kg 10x20kg", headerJan30)
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
	if got[0].Reps != 10 || got[0].Weight != 20 {
		t.Errorf("record = %+v, want 10x20kg", got[0])
	}
}
