package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/liftnotes/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteSink writes records into a training_history table in a SQLite file.
// Every date present in a batch is replaced wholesale, so re-running a
// conversion on the same log leaves the table unchanged.
type SQLiteSink struct {
	path string
}

// NewSQLiteSink returns a sink for the database file at path. The file and its
// parent directory are created on first write.
func NewSQLiteSink(path string) *SQLiteSink {
	return &SQLiteSink{path: path}
}

func (s *SQLiteSink) open() (*sql.DB, error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir %s: %w", dir, err)
		}
	}
	if err := RunMigrations(DriverSQLite, "sqlite://"+s.path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	return db, nil
}

// Write replaces the batch's dates and inserts the records. Returns count inserted.
func (s *SQLiteSink) Write(ctx context.Context, records []models.TrainingRecord) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, date := range recordDates(records) {
		if _, err := tx.ExecContext(ctx, `DELETE FROM training_history WHERE date = ?`, date); err != nil {
			return 0, fmt.Errorf("deleting existing rows for %s: %w", date, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO training_history (date, exercise, weight, weight_unit, reps, sets, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var inserted int64
	for _, r := range records {
		res, err := stmt.ExecContext(ctx, r.Date, r.Exercise, r.Weight, string(r.WeightUnit), r.Reps, r.Sets, r.Notes)
		if err != nil {
			return 0, fmt.Errorf("inserting %s %s: %w", r.Date, r.Exercise, err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return inserted, nil
}

// Records reads the table back ordered by date, exercise and weight.
func (s *SQLiteSink) Records(ctx context.Context) ([]models.TrainingRecord, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT date, exercise, weight, weight_unit, reps, sets, notes
		 FROM training_history
		 ORDER BY date, exercise, weight, reps`)
	if err != nil {
		return nil, fmt.Errorf("querying training history: %w", err)
	}
	defer rows.Close()

	var result []models.TrainingRecord
	for rows.Next() {
		var r models.TrainingRecord
		var unit string
		if err := rows.Scan(&r.Date, &r.Exercise, &r.Weight, &unit, &r.Reps, &r.Sets, &r.Notes); err != nil {
			return nil, fmt.Errorf("scanning training record: %w", err)
		}
		r.WeightUnit = models.WeightUnit(unit)
		result = append(result, r)
	}
	return result, rows.Err()
}
