package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ltr-quiz/internal/quiz"
)

// SaveNewQuiz writes the exam row and every question row in one transaction,
// so a quiz is either fully visible or absent.
func (s *SQLiteStore) SaveNewQuiz(ctx context.Context, q quiz.Quiz) (string, error) {
	if strings.TrimSpace(q.Title) == "" {
		return "", errors.New("quiz title is required")
	}

	date := q.Date
	if date == "" {
		date = quiz.Today(time.Now())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO exam (name, date, status) VALUES (?, ?, ?)`,
		q.Title,
		date,
		string(quiz.StatusNotStarted),
	)
	if err != nil {
		return "", err
	}
	examID, err := res.LastInsertId()
	if err != nil {
		return "", err
	}

	for idx, question := range q.Questions {
		if len(question.Choices) != quiz.ChoiceCount {
			return "", fmt.Errorf("question %d has %d choices: %w", idx+1, len(question.Choices), quiz.ErrInvalidQuiz)
		}

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO question (ordinal, text, choice_1, choice_2, choice_3, choice_4, correct_index, exam_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			idx,
			question.Text,
			question.Choices[0],
			question.Choices[1],
			question.Choices[2],
			question.Choices[3],
			question.CorrectIndex,
			examID,
		); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return strconv.FormatInt(examID, 10), nil
}

func (s *SQLiteStore) ListByStatus(ctx context.Context, status quiz.Status) ([]quiz.Summary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, date
		 FROM exam
		 WHERE status = ?
		 ORDER BY date DESC, id ASC`,
		string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]quiz.Summary, 0)
	for rows.Next() {
		var (
			id   int64
			item quiz.Quiz
		)
		if err := rows.Scan(&id, &item.Title, &item.Date); err != nil {
			return nil, err
		}
		items = append(items, quiz.Summary{
			ID:    strconv.FormatInt(id, 10),
			Title: item.DisplayTitle(),
		})
	}

	return items, rows.Err()
}

func (s *SQLiteStore) GetQuiz(ctx context.Context, quizID string) (quiz.Quiz, bool, error) {
	examID, ok := parseID(quizID)
	if !ok {
		return quiz.Quiz{}, false, nil
	}

	q, found, err := s.getExam(ctx, examID)
	if err != nil || !found {
		return quiz.Quiz{}, found, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT text, choice_1, choice_2, choice_3, choice_4, correct_index
		 FROM question
		 WHERE exam_id = ?
		 ORDER BY ordinal ASC`,
		examID,
	)
	if err != nil {
		return quiz.Quiz{}, false, err
	}
	defer rows.Close()

	q.Questions = make([]quiz.Question, 0)
	for rows.Next() {
		question := quiz.Question{Choices: make([]string, quiz.ChoiceCount)}
		if err := rows.Scan(
			&question.Text,
			&question.Choices[0],
			&question.Choices[1],
			&question.Choices[2],
			&question.Choices[3],
			&question.CorrectIndex,
		); err != nil {
			return quiz.Quiz{}, false, err
		}
		q.Questions = append(q.Questions, question)
	}
	if err := rows.Err(); err != nil {
		return quiz.Quiz{}, false, err
	}

	return q, true, nil
}

// SetStatus is idempotent. Updating a missing exam is a no-op.
func (s *SQLiteStore) SetStatus(ctx context.Context, quizID string, status quiz.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	examID, ok := parseID(quizID)
	if !ok {
		return quiz.ErrQuizNotFound
	}

	_, err := s.db.ExecContext(ctx, `UPDATE exam SET status = ? WHERE id = ?`, string(status), examID)
	return err
}

func (s *SQLiteStore) getExam(ctx context.Context, examID int64) (quiz.Quiz, bool, error) {
	var q quiz.Quiz
	err := s.db.QueryRowContext(
		ctx,
		`SELECT name, date FROM exam WHERE id = ?`,
		examID,
	).Scan(&q.Title, &q.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, false, nil
		}
		return quiz.Quiz{}, false, err
	}

	q.ID = strconv.FormatInt(examID, 10)
	return q, true, nil
}

func parseID(quizID string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(quizID), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
