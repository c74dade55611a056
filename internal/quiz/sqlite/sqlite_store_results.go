package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ltr-quiz/internal/quiz"
)

// SaveResult appends one row per answer and marks the exam FINISHED in the
// same transaction. Earlier runs are never touched; the latest result is
// whichever run carries the newest timestamp.
func (s *SQLiteStore) SaveResult(ctx context.Context, result quiz.Result) error {
	examID, ok := parseID(result.QuizID)
	if !ok {
		return quiz.ErrQuizNotFound
	}

	runID := result.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	completedAt := result.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE exam SET status = ? WHERE id = ?`, string(quiz.StatusFinished), examID)
	if err != nil {
		return fmt.Errorf("mark exam %d finished: %w", examID, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return quiz.ErrQuizNotFound
	}

	for ordinal, answer := range result.Answers {
		given := answer.Given
		if !answer.Answered() {
			given = quiz.NoChoice
		}

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO result (run_id, exam_id, question_ordinal, given_choice, is_correct, elapsed_seconds, created_at_unix)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID,
			examID,
			ordinal,
			given,
			answer.IsCorrect,
			int64(answer.ElapsedSeconds),
			completedAt.UTC().UnixNano(),
		); err != nil {
			return fmt.Errorf("insert answer %d: %w", ordinal+1, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetLatestResult(ctx context.Context, quizID string) (quiz.Result, bool, error) {
	examID, ok := parseID(quizID)
	if !ok {
		return quiz.Result{}, false, nil
	}

	var (
		runID         string
		createdAtUnix int64
	)
	err := s.db.QueryRowContext(
		ctx,
		`SELECT run_id, created_at_unix
		 FROM result
		 WHERE exam_id = ?
		 ORDER BY created_at_unix DESC, id DESC
		 LIMIT 1`,
		examID,
	).Scan(&runID, &createdAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Result{}, false, nil
		}
		return quiz.Result{}, false, err
	}

	exam, found, err := s.getExam(ctx, examID)
	if err != nil || !found {
		return quiz.Result{}, false, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT q.text, q.choice_1, q.choice_2, q.choice_3, q.choice_4, q.correct_index,
		        r.given_choice, r.is_correct, r.elapsed_seconds
		 FROM result r
		 JOIN question q ON q.exam_id = r.exam_id AND q.ordinal = r.question_ordinal
		 WHERE r.exam_id = ? AND r.run_id = ? AND r.created_at_unix = ?
		 ORDER BY r.question_ordinal ASC`,
		examID,
		runID,
		createdAtUnix,
	)
	if err != nil {
		return quiz.Result{}, false, err
	}
	defer rows.Close()

	result := quiz.Result{
		RunID:       runID,
		QuizID:      exam.ID,
		QuizTitle:   exam.DisplayTitle(),
		Answers:     make([]quiz.Answer, 0),
		CompletedAt: time.Unix(0, createdAtUnix).UTC(),
	}
	for rows.Next() {
		var (
			answer  = quiz.Answer{Choices: make([]string, quiz.ChoiceCount)}
			elapsed int64
		)
		if err := rows.Scan(
			&answer.QuestionText,
			&answer.Choices[0],
			&answer.Choices[1],
			&answer.Choices[2],
			&answer.Choices[3],
			&answer.CorrectIndex,
			&answer.Given,
			&answer.IsCorrect,
			&elapsed,
		); err != nil {
			return quiz.Result{}, false, err
		}
		if elapsed < 0 {
			elapsed = 0
		}
		answer.ElapsedSeconds = uint64(elapsed)
		// Total is derived from the rows, not stored.
		result.TotalElapsedSeconds += answer.ElapsedSeconds
		result.Answers = append(result.Answers, answer)
	}
	if err := rows.Err(); err != nil {
		return quiz.Result{}, false, err
	}

	return result, true, nil
}
