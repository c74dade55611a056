// Package router is the top-level navigation state machine. It owns the
// screens, the current locale and the only handle to the quiz store, and it
// runs as a bubbletea model.
package router

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/quiz"
	"ltr-quiz/internal/screen"
	"ltr-quiz/internal/session"
)

// TickInterval bounds how long the view can go without a redraw, so the
// run timers keep moving with no input.
const TickInterval = 250 * time.Millisecond

type Store interface {
	ToDo(ctx context.Context) []quiz.Summary
	Finished(ctx context.Context) []quiz.Summary
	Quiz(ctx context.Context, quizID string) (quiz.Quiz, bool)
	LatestResult(ctx context.Context, quizID string) (quiz.Result, bool)
	FinishRun(ctx context.Context, result quiz.Result) error
}

type Importer interface {
	Import(ctx context.Context, locale language.Tag) []string
	InboxDir() string
}

type LocaleSaver interface {
	SaveLocale(code string) error
}

type Deps struct {
	Store    Store
	Importer Importer
	Locale   LocaleSaver
	Log      *slog.Logger
	// Now feeds the session timers; time.Now when nil.
	Now    func() time.Time
	Colors bool
}

type tickMsg time.Time

type Model struct {
	ctx      context.Context
	store    Store
	importer Importer
	locale   LocaleSaver
	log      *slog.Logger
	now      func() time.Time

	text    i18n.Text
	current screen.ID
	width   int
	height  int

	home      *screen.HomeScreen
	tests     *screen.ListScreen
	results   *screen.ListScreen
	rerun     *screen.ListScreen
	detail    *screen.DetailScreen
	help      *screen.HelpScreen
	importLog *screen.ImportLogScreen
	runner    *screen.RunnerScreen
}

func New(ctx context.Context, deps Deps, lang language.Tag) *Model {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	text := i18n.New(lang)
	theme := screen.NewTheme(deps.Colors)
	inbox := ""
	if deps.Importer != nil {
		inbox = deps.Importer.InboxDir()
	}

	m := &Model{
		ctx:       ctx,
		store:     deps.Store,
		importer:  deps.Importer,
		locale:    deps.Locale,
		log:       log,
		now:       now,
		text:      text,
		current:   screen.Home,
		home:      screen.NewHome(text, theme),
		tests:     screen.NewList(screen.TestList, text, theme),
		results:   screen.NewList(screen.ResultsList, text, theme),
		rerun:     screen.NewList(screen.RerunList, text, theme),
		detail:    screen.NewDetail(text, theme),
		help:      screen.NewHelp(text, theme, inbox),
		importLog: screen.NewImportLog(text, theme),
		runner:    screen.NewRunner(text, theme),
	}
	m.refreshLists()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.activate(m.current))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.HandleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if m.current == screen.Quit {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.current == screen.Quit {
		return ""
	}
	return m.screen(m.current).View(m.width, m.height)
}

func (m *Model) Current() screen.ID {
	return m.current
}

func (m *Model) Locale() language.Tag {
	return m.text.Tag()
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) screen(id screen.ID) screen.Screen {
	switch id {
	case screen.TestList:
		return m.tests
	case screen.ResultsList:
		return m.results
	case screen.RerunList:
		return m.rerun
	case screen.ResultsDetail:
		return m.detail
	case screen.Help:
		return m.help
	case screen.Importer:
		return m.importLog
	case screen.Runner:
		return m.runner
	default:
		return m.home
	}
}

func (m *Model) screens() []screen.Screen {
	return []screen.Screen{m.home, m.tests, m.results, m.rerun, m.detail, m.help, m.importLog, m.runner}
}

// HandleKey applies global shortcuts first and hands everything else to the
// current screen.
func (m *Model) HandleKey(key string) tea.Cmd {
	if m.current == screen.Quit {
		return nil
	}

	switch key {
	case "q", "ctrl+c":
		if m.runner.IsRunning() {
			return nil
		}
		return m.quit()
	case "m":
		if m.runner.IsRunning() {
			return nil
		}
		m.leaveRunner()
		m.home.Frame().Reset()
		return m.activate(screen.Home)
	}

	tr, ok := m.screen(m.current).HandleKey(key)
	if !ok {
		return nil
	}
	return m.apply(tr)
}

func (m *Model) apply(tr screen.Transition) tea.Cmd {
	if tr.ChangeLocale {
		m.cycleLocale()
	}

	switch tr.To {
	case screen.Quit:
		return m.quit()
	case screen.Runner:
		return m.startRunner(tr.QuizID)
	case screen.ResultsDetail:
		return m.showResult(tr.QuizID)
	case screen.Importer:
		return m.runImport()
	}

	if m.current == screen.Runner {
		m.leaveRunner()
	}
	return m.activate(tr.To)
}

// activate switches screens. A Fresh screen gets a clear-screen command
// before its first draw and becomes Initialized.
func (m *Model) activate(id screen.ID) tea.Cmd {
	if m.current != id {
		m.log.Debug("screen change", "from", m.current.String(), "to", id.String())
	}
	m.current = id

	frame := m.screen(id).Frame()
	if frame.State() == screen.Fresh {
		frame.MarkInitialized()
		return tea.ClearScreen
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.leaveRunner()
	m.current = screen.Quit
	m.log.Info("quit")
	return tea.Quit
}

func (m *Model) startRunner(quizID string) tea.Cmd {
	q, ok := m.store.Quiz(m.ctx, quizID)
	if !ok {
		m.log.Warn("quiz not found, staying put", "quiz_id", quizID, "screen", m.current.String())
		return nil
	}

	origin := m.current
	if origin != screen.TestList && origin != screen.RerunList {
		origin = screen.TestList
	}
	m.runner.SetRunner(session.NewRunner(q, session.WithClock(m.now)), origin)
	return m.activate(screen.Runner)
}

// showResult opens the detail view either for the run that just ended or for
// the latest stored result of quizID.
func (m *Model) showResult(quizID string) tea.Cmd {
	if m.current == screen.Runner {
		result, ok := m.persistRun()
		if !ok {
			return nil
		}
		m.detail.SetResult(result, m.runner.Origin())
		return m.activate(screen.ResultsDetail)
	}

	result, ok := m.store.LatestResult(m.ctx, quizID)
	if !ok {
		m.log.Warn("no result for quiz, staying put", "quiz_id", quizID)
		return nil
	}
	m.detail.SetResult(result, screen.ResultsList)
	return m.activate(screen.ResultsDetail)
}

// leaveRunner saves a completed run nobody asked to see, so a finished
// attempt is never lost.
func (m *Model) leaveRunner() {
	if m.current != screen.Runner {
		return
	}
	m.persistRun()
}

// persistRun takes the result from a runner in Summary, stores it and then
// refreshes every list before anything is drawn again.
func (m *Model) persistRun() (quiz.Result, bool) {
	r := m.runner.Runner()
	if r == nil {
		return quiz.Result{}, false
	}
	result, ok := r.TakeResult()
	if !ok {
		return quiz.Result{}, false
	}

	if err := m.store.FinishRun(m.ctx, result); err != nil {
		m.log.Error("save run failed", "quiz_id", result.QuizID, "run_id", result.RunID, "err", err)
	}
	m.refreshLists()
	return result, true
}

func (m *Model) runImport() tea.Cmd {
	if m.importer == nil {
		return nil
	}
	lines := m.importer.Import(m.ctx, m.text.Tag())
	m.importLog.SetLines(lines)
	m.refreshLists()
	return m.activate(screen.Importer)
}

func (m *Model) refreshLists() {
	if m.store == nil {
		return
	}
	todo := m.store.ToDo(m.ctx)
	finished := m.store.Finished(m.ctx)

	m.tests.SetItems(todo)
	m.results.SetItems(finished)
	m.rerun.SetItems(finished)
}

// cycleLocale is the only place the locale changes. Every screen gets the
// new text and redraws from a blank slate.
func (m *Model) cycleLocale() {
	next := i18n.Next(m.text.Tag())
	m.text = i18n.New(next)

	for _, s := range m.screens() {
		s.SetText(m.text)
		s.Frame().Reset()
	}

	if m.locale == nil {
		return
	}
	if err := m.locale.SaveLocale(i18n.Code(next)); err != nil {
		m.log.Error("save locale failed", "lang", i18n.Code(next), "err", err)
	}
}
