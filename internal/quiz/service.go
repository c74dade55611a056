package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service wraps a Repository with the degrade-on-failure policy the screens
// rely on: list queries fall back to empty lists and lookups to "not found".
type Service struct {
	repo Repository
	log  *slog.Logger

	quizCache   map[string]Quiz
	resultCache map[string]Result
}

func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:        repo,
		log:         log,
		quizCache:   make(map[string]Quiz),
		resultCache: make(map[string]Result),
	}
}

// ToDo lists quizzes that were never finished.
func (s *Service) ToDo(ctx context.Context) []Summary {
	return s.list(ctx, StatusNotStarted)
}

// Finished lists quizzes with at least one saved result.
func (s *Service) Finished(ctx context.Context) []Summary {
	return s.list(ctx, StatusFinished)
}

func (s *Service) Quiz(ctx context.Context, quizID string) (Quiz, bool) {
	quizID = strings.TrimSpace(quizID)
	if quizID == "" {
		return Quiz{}, false
	}

	if q, ok := s.getCachedQuiz(quizID); ok {
		return q, true
	}

	q, ok, err := s.repo.GetQuiz(ctx, quizID)
	if err != nil {
		s.log.Warn("load quiz failed", "quiz_id", quizID, "err", err)
		return Quiz{}, false
	}
	if ok {
		s.setCachedQuiz(q)
	}
	return q, ok
}

func (s *Service) LatestResult(ctx context.Context, quizID string) (Result, bool) {
	quizID = strings.TrimSpace(quizID)
	if quizID == "" {
		return Result{}, false
	}

	if result, ok := s.getCachedResult(quizID); ok {
		return result, true
	}

	result, ok, err := s.repo.GetLatestResult(ctx, quizID)
	if err != nil {
		s.log.Warn("load latest result failed", "quiz_id", quizID, "err", err)
		return Result{}, false
	}
	if ok {
		s.setCachedResult(quizID, result)
	}
	return result, ok
}

// FinishRun persists a completed run. The repository marks the quiz
// finished in the same write, so a stored result never sits on the to-do list.
func (s *Service) FinishRun(ctx context.Context, result Result) error {
	s.dropCachedResult(result.QuizID)
	if err := s.repo.SaveResult(ctx, result); err != nil {
		return fmt.Errorf("save result for quiz %s: %w", result.QuizID, err)
	}

	s.log.Info("run saved",
		"quiz_id", result.QuizID,
		"run_id", result.RunID,
		"correct", result.CorrectCount(),
		"total", len(result.Answers),
	)
	return nil
}

func (s *Service) list(ctx context.Context, status Status) []Summary {
	items, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		s.log.Warn("list quizzes failed", "status", status, "err", err)
		return []Summary{}
	}
	if items == nil {
		return []Summary{}
	}
	return items
}
