package screen

import (
	"strings"

	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/quiz"
)

// ListScreen shows quizzes for one of the three list views. The id decides
// what confirming a row does.
type ListScreen struct {
	base
	id    ID
	items []quiz.Summary
	menu  Menu
}

func NewList(id ID, text i18n.Text, theme *Theme) *ListScreen {
	return &ListScreen{
		base:  newBase(text, theme),
		id:    id,
		items: []quiz.Summary{},
	}
}

func (s *ListScreen) ID() ID { return s.id }

// SetItems replaces the rows and keeps the cursor in range.
func (s *ListScreen) SetItems(items []quiz.Summary) {
	s.items = append([]quiz.Summary(nil), items...)
	s.menu.SetSize(len(s.items))
}

func (s *ListScreen) Items() []quiz.Summary {
	return s.items
}

func (s *ListScreen) Selected() (quiz.Summary, bool) {
	if s.menu.Empty() {
		return quiz.Summary{}, false
	}
	return s.items[s.menu.Cursor()], true
}

func (s *ListScreen) HandleKey(key string) (Transition, bool) {
	if s.menu.move(key) {
		return Transition{}, false
	}
	switch key {
	case "b":
		return Transition{To: Home}, true
	case "enter":
		item, ok := s.Selected()
		if !ok {
			return Transition{}, false
		}
		return Transition{To: s.target(), QuizID: item.ID}, true
	}
	return Transition{}, false
}

func (s *ListScreen) target() ID {
	if s.id == ResultsList {
		return ResultsDetail
	}
	return Runner
}

func (s *ListScreen) title() string {
	switch s.id {
	case ResultsList:
		return s.text.T(i18n.ResultsTitle)
	case RerunList:
		return s.text.T(i18n.RerunTitle)
	default:
		return s.text.T(i18n.TestsTitle)
	}
}

func (s *ListScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.theme.Title(s.title()))
	b.WriteString("\n\n")

	if len(s.items) == 0 {
		b.WriteString(s.theme.Muted(s.text.T(i18n.ListEmpty)))
		b.WriteString("\n")
	}

	start, end := visibleRange(s.menu.Cursor(), len(s.items), height-6)
	for idx := start; idx < end; idx++ {
		if idx == s.menu.Cursor() {
			b.WriteString(s.theme.Selected("> " + s.items[idx].Title))
		} else {
			b.WriteString("  " + s.items[idx].Title)
		}
		b.WriteString("\n")
	}

	confirm := i18n.NavSelect
	switch s.id {
	case ResultsList:
		confirm = i18n.NavDetails
	case RerunList:
		confirm = i18n.NavRerun
	}
	b.WriteString("\n")
	b.WriteString(s.navbar(width, confirm, i18n.NavBack, i18n.NavHome, i18n.NavQuit))
	return b.String()
}
