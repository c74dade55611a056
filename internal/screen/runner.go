package screen

import (
	"fmt"
	"strings"

	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/session"
)

// RunnerScreen puts a session.Runner on screen. The highlighted choice is
// view state only and goes back to the first choice for every question.
type RunnerScreen struct {
	base
	runner    *session.Runner
	origin    ID
	highlight int
}

func NewRunner(text i18n.Text, theme *Theme) *RunnerScreen {
	return &RunnerScreen{
		base:   newBase(text, theme),
		origin: TestList,
	}
}

func (s *RunnerScreen) ID() ID { return Runner }

// SetRunner installs a new attempt launched from origin.
func (s *RunnerScreen) SetRunner(r *session.Runner, origin ID) {
	s.runner = r
	s.origin = origin
	s.highlight = 0
	s.frame.Reset()
}

func (s *RunnerScreen) Runner() *session.Runner {
	return s.runner
}

func (s *RunnerScreen) Origin() ID {
	return s.origin
}

func (s *RunnerScreen) Highlight() int {
	return s.highlight
}

// IsRunning reports whether an attempt is mid-quiz.
func (s *RunnerScreen) IsRunning() bool {
	return s.runner != nil && s.runner.IsRunning()
}

func (s *RunnerScreen) HandleKey(key string) (Transition, bool) {
	if s.runner == nil {
		if key == "b" {
			return Transition{To: s.origin}, true
		}
		return Transition{}, false
	}

	switch s.runner.Phase() {
	case session.PhaseIdle:
		switch key {
		case "s":
			if err := s.runner.Start(); err == nil {
				s.highlight = 0
			}
		case "b":
			return Transition{To: s.origin}, true
		}
	case session.PhaseRunning:
		switch key {
		case "up", "k":
			if s.highlight > 0 {
				s.highlight--
			}
		case "down", "j":
			if question, _, ok := s.runner.Current(); ok && s.highlight < len(question.Choices)-1 {
				s.highlight++
			}
		case "enter":
			if err := s.runner.Submit(s.highlight); err == nil {
				s.highlight = 0
			}
		case "P":
			return Transition{To: Quit}, true
		}
	case session.PhaseSummary:
		switch key {
		case "d", "enter":
			return Transition{To: ResultsDetail, QuizID: s.runner.Quiz().ID}, true
		case "b":
			return Transition{To: s.origin}, true
		}
	}
	return Transition{}, false
}

func (s *RunnerScreen) View(width, _ int) string {
	var b strings.Builder
	if s.runner == nil {
		b.WriteString(s.navbar(width, i18n.NavBack))
		return b.String()
	}

	q := s.runner.Quiz()
	b.WriteString(s.theme.Title(q.DisplayTitle()))
	b.WriteString("\n\n")

	switch s.runner.Phase() {
	case session.PhaseIdle:
		b.WriteString(s.text.T(i18n.RunnerIdle, q.Title))
		b.WriteString("\n")
		b.WriteString(s.theme.Muted(s.text.T(i18n.RunnerCount, s.runner.QuestionCount())))
		b.WriteString("\n\n")
		b.WriteString(s.navbar(width, i18n.NavStart, i18n.NavBack, i18n.NavHome, i18n.NavQuit))

	case session.PhaseRunning:
		question, idx, _ := s.runner.Current()
		b.WriteString(s.text.T(i18n.RunnerProgress, idx+1, s.runner.QuestionCount()))
		b.WriteString("   ")
		b.WriteString(s.theme.Muted(s.text.T(i18n.RunnerTimer, s.runner.QuestionElapsed(), s.runner.TotalElapsed())))
		b.WriteString("\n\n")
		b.WriteString(question.Text)
		b.WriteString("\n\n")
		for c, choice := range question.Choices {
			line := fmt.Sprintf("%c) %s", 'a'+c, choice)
			if c == s.highlight {
				b.WriteString(s.theme.Selected("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.navbar(width, i18n.NavAnswer, i18n.NavForce))

	case session.PhaseSummary:
		result := s.runner.Result()
		b.WriteString(s.text.T(i18n.RunnerSummary, result.CorrectCount(), len(result.Answers), result.TotalElapsedSeconds))
		b.WriteString("\n")
		b.WriteString(s.text.T(i18n.RunnerHint))
		b.WriteString("\n\n")
		b.WriteString(s.navbar(width, i18n.NavDetails, i18n.NavBack, i18n.NavHome, i18n.NavQuit))
	}
	return b.String()
}
