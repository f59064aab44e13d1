package ingest

// Result holds the outcome of one conversion run.
type Result struct {
	RunID string `json:"run_id"`

	LinesRead     int `json:"lines_read"`
	LinesIgnored  int `json:"lines_ignored"`
	ExerciseLines int `json:"exercise_lines"`
	DatesSeen     int `json:"dates_seen"`
	DatesSkipped  int `json:"dates_skipped"`

	RecordsParsed       int   `json:"records_parsed"`
	RecordsConsolidated int   `json:"records_consolidated"`
	RecordsWritten      int64 `json:"records_written"`

	Message string `json:"message,omitempty"`
}
