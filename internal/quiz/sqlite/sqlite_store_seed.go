package sqlite

import (
	"context"
	"fmt"

	"ltr-quiz/internal/quiz"
)

var seedQuizzes = []quiz.Quiz{
	{
		Title: "Everyday greetings",
		Date:  "2025-03-07",
		Questions: []quiz.Question{
			{
				Text:         "You meet a colleague at 1 pm. What do you say?",
				Choices:      []string{"Good evening", "Good afternoon", "Good night", "Farewell"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which reply fits \"How do you do?\"",
				Choices:      []string{"I do fine things", "How do you do?", "Yes, I do", "Tomorrow"},
				CorrectIndex: 1,
			},
			{
				Text:         "What do you say when leaving a shop in the evening?",
				Choices:      []string{"Good morning", "Hello there", "Have a good evening", "Welcome"},
				CorrectIndex: 2,
			},
		},
	},
	{
		Title: "Irregular verbs",
		Date:  "2025-02-28",
		Questions: []quiz.Question{
			{
				Text:         "Past simple of \"go\"",
				Choices:      []string{"goed", "went", "gone", "going"},
				CorrectIndex: 1,
			},
			{
				Text:         "Past participle of \"write\"",
				Choices:      []string{"wrote", "writed", "written", "writing"},
				CorrectIndex: 2,
			},
			{
				Text:         "Past simple of \"catch\"",
				Choices:      []string{"caught", "catched", "cought", "catch"},
				CorrectIndex: 0,
			},
		},
	},
	{
		Title: "Adjectives",
		Date:  "2025-01-03",
		Questions: []quiz.Question{
			{
				Text:         "The comparative of \"good\" is ...",
				Choices:      []string{"gooder", "more good", "best", "better"},
				CorrectIndex: 3,
			},
			{
				Text:         "Stop looking at the world through ... glasses.",
				Choices:      []string{"pinky", "rose-tinted", "roses", "tinting"},
				CorrectIndex: 1,
			},
		},
	},
}

// Seed fills an empty database with a few demo quizzes. It does nothing when
// any exam already exists and reports how many quizzes it added.
func (s *SQLiteStore) Seed(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exam`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, q := range seedQuizzes {
		if _, err := s.SaveNewQuiz(ctx, q); err != nil {
			return 0, fmt.Errorf("seed %q: %w", q.Title, err)
		}
	}
	return len(seedQuizzes), nil
}
