package sqlite

import (
	"context"
	"fmt"
)

// CreateSchema is safe to call on every start; it only adds what is missing.
func (s *SQLiteStore) CreateSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS exam (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'NOT_STARTED'
		);`,
		`CREATE TABLE IF NOT EXISTS question (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ordinal INTEGER NOT NULL,
			text TEXT NOT NULL,
			choice_1 TEXT NOT NULL,
			choice_2 TEXT NOT NULL,
			choice_3 TEXT NOT NULL,
			choice_4 TEXT NOT NULL,
			correct_index INTEGER NOT NULL,
			exam_id INTEGER NOT NULL REFERENCES exam(id),
			UNIQUE (exam_id, ordinal)
		);`,
		`CREATE TABLE IF NOT EXISTS result (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			exam_id INTEGER NOT NULL REFERENCES exam(id),
			question_ordinal INTEGER NOT NULL,
			-- 255 marks a question left unanswered.
			given_choice INTEGER NOT NULL,
			is_correct INTEGER NOT NULL,
			elapsed_seconds INTEGER NOT NULL,
			created_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exam_status ON exam(status, date DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_result_exam_created_at ON result(exam_id, created_at_unix DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_result_run ON result(run_id);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
