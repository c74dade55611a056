// Package session drives a single quiz attempt from start to summary.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"ltr-quiz/internal/quiz"
)

var (
	ErrNotIdle     = errors.New("run already started")
	ErrNotRunning  = errors.New("run is not in progress")
	ErrNoQuestions = errors.New("quiz has no questions")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseSummary
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseSummary:
		return "summary"
	default:
		return "unknown"
	}
}

type Option func(*Runner)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

func WithRunID(newID func() string) Option {
	return func(r *Runner) {
		if newID != nil {
			r.newRunID = newID
		}
	}
}

// Runner is not reused across attempts; build a new one per run.
type Runner struct {
	quiz     quiz.Quiz
	now      func() time.Time
	newRunID func() string

	phase Phase
	index int

	startedAt         time.Time
	questionStartedAt time.Time

	result quiz.Result
	taken  bool
}

func NewRunner(q quiz.Quiz, opts ...Option) *Runner {
	r := &Runner{
		quiz:     q,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start moves Idle to Running on the first question. The quiz is copied so
// later changes by the caller cannot leak into the run.
func (r *Runner) Start() error {
	if r.phase != PhaseIdle {
		return ErrNotIdle
	}
	if len(r.quiz.Questions) == 0 {
		return ErrNoQuestions
	}

	r.quiz = snapshot(r.quiz)
	now := r.now()
	r.startedAt = now
	r.questionStartedAt = now
	r.index = 0
	r.result = quiz.Result{
		RunID:     r.newRunID(),
		QuizID:    r.quiz.ID,
		QuizTitle: r.quiz.DisplayTitle(),
		Answers:   make([]quiz.Answer, 0, len(r.quiz.Questions)),
	}
	r.phase = PhaseRunning
	return nil
}

// Submit records the answer for the current question and advances. After the
// last question the run moves to Summary and stops accepting answers.
func (r *Runner) Submit(choice int) error {
	if r.phase != PhaseRunning {
		return ErrNotRunning
	}

	now := r.now()
	question := r.quiz.Questions[r.index]
	given := choice
	if given < 0 || given >= quiz.ChoiceCount {
		given = quiz.NoChoice
	}

	r.result.Answers = append(r.result.Answers, quiz.Answer{
		QuestionText:   question.Text,
		Choices:        append([]string(nil), question.Choices...),
		CorrectIndex:   question.CorrectIndex,
		Given:          given,
		IsCorrect:      question.IsCorrect(given),
		ElapsedSeconds: seconds(now.Sub(r.questionStartedAt)),
	})
	r.questionStartedAt = now

	if r.index+1 < len(r.quiz.Questions) {
		r.index++
		return nil
	}

	r.result.TotalElapsedSeconds = seconds(now.Sub(r.startedAt))
	r.result.CompletedAt = now
	r.phase = PhaseSummary
	return nil
}

// TakeResult hands the completed result over exactly once.
func (r *Runner) TakeResult() (quiz.Result, bool) {
	if r.phase != PhaseSummary || r.taken {
		return quiz.Result{}, false
	}
	r.taken = true
	return r.result, true
}

// Result peeks at the result without taking it.
func (r *Runner) Result() quiz.Result {
	return r.result
}

func (r *Runner) Taken() bool {
	return r.taken
}

// Current returns the question being asked and its zero-based position.
func (r *Runner) Current() (quiz.Question, int, bool) {
	if r.phase != PhaseRunning {
		return quiz.Question{}, 0, false
	}
	return r.quiz.Questions[r.index], r.index, true
}

func (r *Runner) Quiz() quiz.Quiz {
	return r.quiz
}

func (r *Runner) QuestionCount() int {
	return len(r.quiz.Questions)
}

func (r *Runner) Phase() Phase {
	return r.phase
}

func (r *Runner) IsRunning() bool {
	return r.phase == PhaseRunning
}

func (r *Runner) QuestionElapsed() uint64 {
	if r.phase != PhaseRunning {
		return 0
	}
	return seconds(r.now().Sub(r.questionStartedAt))
}

// TotalElapsed keeps counting while running and freezes at the summary.
func (r *Runner) TotalElapsed() uint64 {
	switch r.phase {
	case PhaseRunning:
		return seconds(r.now().Sub(r.startedAt))
	case PhaseSummary:
		return r.result.TotalElapsedSeconds
	default:
		return 0
	}
}

func seconds(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d / time.Second)
}

func snapshot(q quiz.Quiz) quiz.Quiz {
	out := q
	out.Questions = make([]quiz.Question, len(q.Questions))
	for idx, question := range q.Questions {
		question.Choices = append([]string(nil), question.Choices...)
		out.Questions[idx] = question
	}
	return out
}
