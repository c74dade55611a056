package screen

import (
	"fmt"
	"strings"

	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/quiz"
)

// DetailScreen shows one result, question by question.
type DetailScreen struct {
	base
	result quiz.Result
	loaded bool
	back   ID
	scroll int
}

func NewDetail(text i18n.Text, theme *Theme) *DetailScreen {
	return &DetailScreen{
		base: newBase(text, theme),
		back: ResultsList,
	}
}

func (s *DetailScreen) ID() ID { return ResultsDetail }

// SetResult loads a result and remembers where back should lead.
func (s *DetailScreen) SetResult(result quiz.Result, back ID) {
	s.result = result
	s.loaded = true
	s.back = back
	s.scroll = 0
	s.frame.Reset()
}

func (s *DetailScreen) Result() (quiz.Result, bool) {
	return s.result, s.loaded
}

func (s *DetailScreen) Back() ID {
	return s.back
}

func (s *DetailScreen) HandleKey(key string) (Transition, bool) {
	switch key {
	case "b":
		return Transition{To: s.back}, true
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.result.Answers)-1 {
			s.scroll++
		}
	}
	return Transition{}, false
}

func (s *DetailScreen) View(width, height int) string {
	var b strings.Builder
	if !s.loaded {
		b.WriteString(s.theme.Muted(s.text.T(i18n.DetailMissing)))
		b.WriteString("\n\n")
		b.WriteString(s.navbar(width, i18n.NavBack, i18n.NavHome, i18n.NavQuit))
		return b.String()
	}

	b.WriteString(s.theme.Title(s.text.T(i18n.DetailTitle, s.result.QuizTitle)))
	b.WriteString("\n")
	b.WriteString(s.text.T(i18n.DetailScore, s.result.CorrectCount(), len(s.result.Answers)))
	b.WriteString("   ")
	b.WriteString(s.text.T(i18n.DetailTime, s.result.TotalElapsedSeconds))
	b.WriteString("\n\n")

	// Each answer takes four lines.
	rows := 0
	if height > 0 {
		rows = (height - 7) / 4
		if rows < 1 {
			rows = 1
		}
	}
	start, end := s.scroll, len(s.result.Answers)
	if rows > 0 && start+rows < end {
		end = start + rows
	}
	for idx := start; idx < end; idx++ {
		s.writeAnswer(&b, idx, s.result.Answers[idx])
	}

	b.WriteString(s.navbar(width, i18n.NavBack, i18n.NavHome, i18n.NavQuit))
	return b.String()
}

func (s *DetailScreen) writeAnswer(b *strings.Builder, idx int, answer quiz.Answer) {
	b.WriteString(s.text.T(i18n.DetailQuestion, idx+1, answer.QuestionText, answer.ElapsedSeconds))
	b.WriteString("\n")

	given := answer.GivenText()
	if !answer.Answered() {
		given = s.text.T(i18n.DetailUnanswered)
	}
	line := "   " + s.text.T(i18n.DetailGiven, given)
	if answer.IsCorrect {
		b.WriteString(s.theme.Good(line + " ✓"))
	} else {
		b.WriteString(s.theme.Bad(line + " ✗"))
	}
	b.WriteString("\n")
	if !answer.IsCorrect {
		b.WriteString(fmt.Sprintf("   %s\n", s.text.T(i18n.DetailCorrect, answer.CorrectText())))
	}
	b.WriteString("\n")
}
