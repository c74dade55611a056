package quiz

import (
	"context"
	"errors"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrInvalidQuiz  = errors.New("invalid quiz")
)

// Repository is the persistence contract of the quiz store. Missing entities
// are reported through the bool result, not as errors.
type Repository interface {
	ListByStatus(ctx context.Context, status Status) ([]Summary, error)
	GetQuiz(ctx context.Context, quizID string) (Quiz, bool, error)
	GetLatestResult(ctx context.Context, quizID string) (Result, bool, error)
	// SaveResult stores a run and sets the quiz to StatusFinished atomically.
	SaveResult(ctx context.Context, result Result) error
	SetStatus(ctx context.Context, quizID string, status Status) error
	SaveNewQuiz(ctx context.Context, q Quiz) (string, error)
}

// QuizSaver is the part of Repository the importer needs.
type QuizSaver interface {
	SaveNewQuiz(ctx context.Context, q Quiz) (string, error)
}
