// Package screen renders the application's views and maps keys on each view
// to navigation requests. Screens never navigate on their own; the router
// applies the transitions they return.
package screen

import (
	"strings"

	"ltr-quiz/internal/i18n"
)

type ID int

const (
	Home ID = iota
	TestList
	ResultsList
	ResultsDetail
	RerunList
	Help
	Runner
	Importer
	Quit
)

func (id ID) String() string {
	switch id {
	case Home:
		return "home"
	case TestList:
		return "test_list"
	case ResultsList:
		return "results_list"
	case ResultsDetail:
		return "results_detail"
	case RerunList:
		return "rerun_list"
	case Help:
		return "help"
	case Runner:
		return "runner"
	case Importer:
		return "importer"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transition is a navigation request returned by a screen.
type Transition struct {
	To ID
	// QuizID selects the quiz for Runner and ResultsDetail.
	QuizID string
	// ChangeLocale asks the router to switch to the next language.
	ChangeLocale bool
}

type Screen interface {
	ID() ID
	View(width, height int) string
	// HandleKey receives keys in bubbletea notation ("up", "enter", "b").
	HandleKey(key string) (Transition, bool)
	Frame() *Frame
	SetText(text i18n.Text)
}

type RenderState int

const (
	// Fresh screens must clear whatever the terminal still shows before
	// their first draw.
	Fresh RenderState = iota
	Initialized
)

func (s RenderState) String() string {
	if s == Initialized {
		return "initialized"
	}
	return "fresh"
}

type Frame struct {
	state RenderState
}

func (f *Frame) State() RenderState {
	return f.state
}

func (f *Frame) Reset() {
	f.state = Fresh
}

func (f *Frame) MarkInitialized() {
	f.state = Initialized
}

// base carries what every screen shares.
type base struct {
	frame Frame
	text  i18n.Text
	theme *Theme
}

func newBase(text i18n.Text, theme *Theme) base {
	if theme == nil {
		theme = NewTheme(false)
	}
	return base{text: text, theme: theme}
}

func (b *base) Frame() *Frame {
	return &b.frame
}

func (b *base) SetText(text i18n.Text) {
	b.text = text
}

func (b *base) navbar(width int, keys ...i18n.Key) string {
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		labels = append(labels, b.text.T(key))
	}
	if width <= 0 {
		width = 40
	}
	rule := strings.Repeat("─", width)
	return b.theme.Muted(rule) + "\n" + b.theme.Nav(strings.Join(labels, " | "))
}

// visibleRange keeps the cursor inside a window of rows lines.
func visibleRange(cursor, total, rows int) (int, int) {
	if rows <= 0 || total <= rows {
		return 0, total
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}
