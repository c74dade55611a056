package screen

import (
	"strings"

	"ltr-quiz/internal/i18n"
)

type homeItem struct {
	label    i18n.Key
	shortcut string
	to       ID
}

var homeItems = []homeItem{
	{label: i18n.HomeTests, shortcut: "t", to: TestList},
	{label: i18n.HomeResults, shortcut: "r", to: ResultsList},
	{label: i18n.HomeRerun, shortcut: "d", to: RerunList},
	{label: i18n.HomeHelp, shortcut: "h", to: Help},
	{label: i18n.HomeExit, shortcut: "q", to: Quit},
}

type HomeScreen struct {
	base
	menu Menu
}

func NewHome(text i18n.Text, theme *Theme) *HomeScreen {
	s := &HomeScreen{base: newBase(text, theme)}
	s.menu.SetSize(len(homeItems))
	return s
}

func (s *HomeScreen) ID() ID { return Home }

func (s *HomeScreen) HandleKey(key string) (Transition, bool) {
	if s.menu.move(key) {
		return Transition{}, false
	}
	if key == "enter" {
		return Transition{To: homeItems[s.menu.Cursor()].to}, true
	}
	for _, item := range homeItems {
		if item.shortcut == key {
			return Transition{To: item.to}, true
		}
	}
	return Transition{}, false
}

func (s *HomeScreen) View(width, _ int) string {
	var b strings.Builder
	b.WriteString(s.theme.Title(s.text.T(i18n.HomeTitle)))
	b.WriteString("\n\n")
	for idx, item := range homeItems {
		line := "[" + item.shortcut + "] " + s.text.T(item.label)
		if idx == s.menu.Cursor() {
			b.WriteString(s.theme.Selected("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.navbar(width, i18n.NavSelect, i18n.NavQuit))
	return b.String()
}
