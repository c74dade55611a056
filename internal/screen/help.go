package screen

import (
	"strings"

	"ltr-quiz/internal/i18n"
)

type HelpScreen struct {
	base
	inboxDir string
}

func NewHelp(text i18n.Text, theme *Theme, inboxDir string) *HelpScreen {
	return &HelpScreen{
		base:     newBase(text, theme),
		inboxDir: inboxDir,
	}
}

func (s *HelpScreen) ID() ID { return Help }

func (s *HelpScreen) HandleKey(key string) (Transition, bool) {
	switch key {
	case "b":
		return Transition{To: Home}, true
	case "c":
		return Transition{To: Help, ChangeLocale: true}, true
	case "i":
		return Transition{To: Importer}, true
	}
	return Transition{}, false
}

func (s *HelpScreen) View(width, _ int) string {
	var b strings.Builder
	b.WriteString(s.theme.Title(s.text.T(i18n.HelpTitle)))
	b.WriteString("\n\n")
	b.WriteString(s.text.T(i18n.HelpIntro))
	b.WriteString("\n")
	b.WriteString(s.text.T(i18n.HelpKeys))
	b.WriteString("\n")
	b.WriteString(s.text.T(i18n.HelpImport, s.inboxDir))
	b.WriteString("\n\n")
	b.WriteString(s.text.T(i18n.HelpLanguage, s.text.LanguageName()))
	b.WriteString("\n\n")
	b.WriteString(s.navbar(width, i18n.NavLanguage, i18n.NavImport, i18n.NavBack, i18n.NavHome, i18n.NavQuit))
	return b.String()
}
