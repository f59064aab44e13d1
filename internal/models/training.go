package models

import (
	"cmp"
	"slices"
	"strconv"
)

// WeightUnit is the unit suffix attached to a logged weight.
type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
)

// SetTriple is one decoded set from a set token such as "12x12x45lb".
type SetTriple struct {
	Reps   int
	Weight float64
	Unit   WeightUnit
}

// DateHeader is a MM/DD/YY date line with its optional workout label ("Push", "Legs").
type DateHeader struct {
	Month string
	Day   string
	Year  string
	Label string
}

// Raw returns the header date as written in the log, e.g. "01/30/26".
func (h DateHeader) Raw() string {
	return h.Month + "/" + h.Day + "/" + h.Year
}

// ISO returns the header date as YYYY-MM-DD. The century is always 20xx.
func (h DateHeader) ISO() string {
	return "20" + h.Year + "-" + h.Month + "-" + h.Day
}

// TrainingRecord is one exported row. Freshly extracted records carry Sets == 1;
// consolidation folds identical sets into a single record with a higher count.
type TrainingRecord struct {
	Date       string     `json:"date"`
	Exercise   string     `json:"exercise"`
	Weight     float64    `json:"weight"`
	WeightUnit WeightUnit `json:"weight_unit"`
	Reps       int        `json:"reps"`
	Sets       int        `json:"sets"`
	Notes      string     `json:"notes"`
}

// WeightLabel renders the weight with its unit suffix: "45lb", "17.5lb", "0kg".
func (r TrainingRecord) WeightLabel() string {
	return strconv.FormatFloat(r.Weight, 'f', -1, 64) + string(r.WeightUnit)
}

// SortRecords orders records by date, exercise, then weight value. Ties keep their
// input order.
func SortRecords(records []TrainingRecord) {
	slices.SortStableFunc(records, func(a, b TrainingRecord) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Exercise, b.Exercise); c != 0 {
			return c
		}
		return cmp.Compare(a.Weight, b.Weight)
	})
}
