package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/claude/liftnotes/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// insertChunk keeps each statement well under the 65535 bind parameter limit.
const insertChunk = 1000

const columnsPerRow = 7

// PostgresSink writes records into training_history on a PostgreSQL server with
// the same replace-by-date semantics as SQLiteSink.
type PostgresSink struct {
	dsn string
}

// NewPostgresSink returns a sink for the given postgres:// DSN.
func NewPostgresSink(dsn string) *PostgresSink {
	return &PostgresSink{dsn: dsn}
}

// Write migrates, then replaces the batch's dates inside one transaction.
func (s *PostgresSink) Write(ctx context.Context, records []models.TrainingRecord) (int64, error) {
	if err := RunMigrations(DriverPostgres, s.dsn); err != nil {
		return 0, err
	}

	pool, err := pgxpool.New(ctx, s.dsn)
	if err != nil {
		return 0, fmt.Errorf("creating pool: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return 0, fmt.Errorf("pinging database: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if dates := recordDates(records); len(dates) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM training_history WHERE date = ANY($1)`, dates); err != nil {
			return 0, fmt.Errorf("deleting existing rows: %w", err)
		}
	}

	var inserted int64
	for start := 0; start < len(records); start += insertChunk {
		end := min(start+insertChunk, len(records))
		query, args := buildInsert(records[start:end])
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("inserting training records: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return inserted, nil
}

// buildInsert renders a multi-row INSERT for rows with positional parameters.
func buildInsert(rows []models.TrainingRecord) (string, []any) {
	query := `INSERT INTO training_history (date, exercise, weight, weight_unit, reps, sets, notes) VALUES `
	args := make([]any, 0, len(rows)*columnsPerRow)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * columnsPerRow
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		args = append(args, r.Date, r.Exercise, r.Weight, string(r.WeightUnit), r.Reps, r.Sets, r.Notes)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"
	return query, args
}
