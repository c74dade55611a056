package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/quiz"
)

var validate = validator.New()

// InvalidError describes the first structural problem found in a quiz.
type InvalidError struct {
	Field string
	// Question is 1-based; zero means the problem is with the quiz itself.
	Question int
}

func (e *InvalidError) Error() string {
	if e.Question == 0 {
		return fmt.Sprintf("invalid quiz: bad %s", strings.ToLower(e.Field))
	}
	return fmt.Sprintf("invalid quiz: question %d: bad %s", e.Question, strings.ToLower(e.Field))
}

func (e *InvalidError) Unwrap() error {
	return quiz.ErrInvalidQuiz
}

// Reason renders the problem for the import log.
func (e *InvalidError) Reason(text i18n.Text) string {
	switch e.Field {
	case "Title":
		return text.T(i18n.ReasonTitle)
	case "Questions":
		return text.T(i18n.ReasonQuestions)
	case "Text":
		return text.T(i18n.ReasonText, e.Question)
	case "Choices":
		return text.T(i18n.ReasonChoices, e.Question)
	case "CorrectIndex":
		return text.T(i18n.ReasonCorrect, e.Question)
	default:
		return text.T(i18n.ReasonUnknown)
	}
}

// Validate checks the quiz against the rules every stored quiz must meet. A
// quiz is accepted or rejected as a whole.
func Validate(q quiz.Quiz) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("validate quiz: %w", err)
	}

	first := validationErrors[0]
	return &InvalidError{
		Field:    first.StructField(),
		Question: questionNumber(first.StructNamespace()),
	}
}

// questionNumber pulls N+1 out of "Quiz.Questions[N].Field".
func questionNumber(namespace string) int {
	const marker = "Questions["
	start := strings.Index(namespace, marker)
	if start < 0 {
		return 0
	}
	rest := namespace[start+len(marker):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return 0
	}
	idx, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return idx + 1
}
