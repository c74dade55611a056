package quiz

import (
	"fmt"
	"time"
)

const (
	// ChoiceCount is the number of choices every question carries.
	ChoiceCount = 4

	// NoChoice is the sentinel index for "no answer given" and "no correct
	// choice marked". It is out of range for every valid choice and is stored
	// as-is.
	NoChoice = 255

	dateLayout = "2006-01-02"
)

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusFinished   Status = "FINISHED"
)

func (s Status) Valid() bool {
	return s == StatusNotStarted || s == StatusFinished
}

// Quiz is an ordered set of multiple-choice questions. The slice order is the
// presentation order.
type Quiz struct {
	ID        string     `validate:"-"`
	Title     string     `validate:"min=2"`
	Date      string     `validate:"-"`
	Questions []Question `validate:"min=2,dive"`
}

// DisplayTitle is the list label, "[date] title".
func (q Quiz) DisplayTitle() string {
	return fmt.Sprintf("[%s] %s", q.Date, q.Title)
}

type Question struct {
	Text         string   `validate:"min=2"`
	Choices      []string `validate:"len=4"`
	CorrectIndex int      `validate:"min=0,max=3"`
}

func (q Question) IsCorrect(choice int) bool {
	return validIndex(choice) && choice == q.CorrectIndex
}

// Answer is a snapshot of one answered question. IsCorrect is fixed when the
// answer is recorded.
type Answer struct {
	QuestionText   string
	Choices        []string
	CorrectIndex   int
	Given          int
	IsCorrect      bool
	ElapsedSeconds uint64
}

func (a Answer) Answered() bool {
	return validIndex(a.Given)
}

func (a Answer) GivenText() string {
	if !a.Answered() || a.Given >= len(a.Choices) {
		return ""
	}
	return a.Choices[a.Given]
}

func (a Answer) CorrectText() string {
	if !validIndex(a.CorrectIndex) || a.CorrectIndex >= len(a.Choices) {
		return ""
	}
	return a.Choices[a.CorrectIndex]
}

// Result is the record of one completed run.
type Result struct {
	RunID               string
	QuizID              string
	QuizTitle           string
	Answers             []Answer
	TotalElapsedSeconds uint64
	CompletedAt         time.Time
}

func (r Result) CorrectCount() int {
	count := 0
	for _, answer := range r.Answers {
		if answer.IsCorrect {
			count++
		}
	}
	return count
}

// Summary is one row of a quiz list.
type Summary struct {
	ID    string
	Title string
}

// Today formats t the way quiz dates are stored.
func Today(t time.Time) string {
	return t.Format(dateLayout)
}

func validIndex(idx int) bool {
	return idx >= 0 && idx < ChoiceCount
}
