package screen

import (
	"strings"

	"ltr-quiz/internal/i18n"
)

// ImportLogScreen shows the log of the last import run.
type ImportLogScreen struct {
	base
	lines  []string
	scroll int
}

func NewImportLog(text i18n.Text, theme *Theme) *ImportLogScreen {
	return &ImportLogScreen{base: newBase(text, theme)}
}

func (s *ImportLogScreen) ID() ID { return Importer }

func (s *ImportLogScreen) SetLines(lines []string) {
	s.lines = append([]string(nil), lines...)
	s.scroll = 0
	s.frame.Reset()
}

func (s *ImportLogScreen) Lines() []string {
	return s.lines
}

func (s *ImportLogScreen) HandleKey(key string) (Transition, bool) {
	switch key {
	case "b":
		return Transition{To: Help}, true
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.lines)-1 {
			s.scroll++
		}
	}
	return Transition{}, false
}

func (s *ImportLogScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.theme.Title(s.text.T(i18n.ImportTitle)))
	b.WriteString("\n\n")

	end := len(s.lines)
	if rows := height - 6; height > 0 && rows > 0 && s.scroll+rows < end {
		end = s.scroll + rows
	}
	for _, line := range s.lines[s.scroll:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.navbar(width, i18n.NavBack, i18n.NavHome, i18n.NavQuit))
	return b.String()
}
