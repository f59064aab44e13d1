// Package sample embeds a real hand-written training log used for demos and tests.
package sample

import (
	_ "embed"
	"slices"
)

//go:embed notes.txt
var notes string

// skipDates are the cardio-only days of the embedded log.
var skipDates = []string{"01/21/26", "01/20/26", "01/18/26", "01/14/26"}

// Notes returns the embedded training log.
func Notes() string {
	return notes
}

// SkipDates returns the dates of the embedded log that hold no strength work.
func SkipDates() []string {
	return slices.Clone(skipDates)
}
