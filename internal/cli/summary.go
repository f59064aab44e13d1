package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claude/liftnotes/internal/ingest"
	"github.com/claude/liftnotes/internal/models"
)

// sampleRows caps the rows echoed after a conversion.
const sampleRows = 10

var (
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

// formatRow renders one record as "date | exercise | weight × reps reps × sets sets".
func formatRow(r models.TrainingRecord) string {
	return fmt.Sprintf("%s | %s | %s × %d reps × %d sets", r.Date, r.Exercise, r.WeightLabel(), r.Reps, r.Sets)
}

func printSummary(w io.Writer, result *ingest.Result, records []models.TrainingRecord, dest string) {
	b := strings.Builder{}

	b.WriteString(okStyle.Render("✓"))
	fmt.Fprintf(&b, " Processed %d workout entries\n", len(records))
	b.WriteString(okStyle.Render("✓"))
	fmt.Fprintf(&b, " Output written to %s\n", dest)
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d lines read, %d ignored, %d of %d dates skipped",
		result.LinesRead, result.LinesIgnored, result.DatesSkipped, result.DatesSeen)))
	b.WriteString("\n")

	if len(records) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Sample rows:"))
		b.WriteString("\n")
		for i, r := range records {
			if i == sampleRows {
				break
			}
			b.WriteString("  ")
			b.WriteString(formatRow(r))
			b.WriteString("\n")
		}
	}

	fmt.Fprint(w, b.String())
}
