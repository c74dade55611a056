package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/quiz"
)

var (
	en = i18n.New(language.English)
	pl = i18n.New(language.Polish)
)

func TestFrameStates(t *testing.T) {
	var f Frame
	assert.Equal(t, Fresh, f.State())
	f.MarkInitialized()
	assert.Equal(t, Initialized, f.State())
	f.Reset()
	assert.Equal(t, Fresh, f.State())
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "results_detail", ResultsDetail.String())
	assert.Equal(t, "unknown", ID(42).String())
}

func TestMenuClampsCursor(t *testing.T) {
	var m Menu
	m.SetSize(3)
	m.Up()
	assert.Equal(t, 0, m.Cursor())
	m.Down()
	m.Down()
	m.Down()
	assert.Equal(t, 2, m.Cursor())

	m.SetSize(1)
	assert.Equal(t, 0, m.Cursor())
	m.SetSize(0)
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Cursor())
}

func TestVisibleRange(t *testing.T) {
	start, end := visibleRange(0, 5, 0)
	assert.Equal(t, [2]int{0, 5}, [2]int{start, end})

	start, end = visibleRange(9, 10, 4)
	assert.Equal(t, [2]int{6, 10}, [2]int{start, end})

	start, end = visibleRange(5, 10, 4)
	assert.Equal(t, [2]int{3, 7}, [2]int{start, end})
}

func TestHomeShortcutsAndMenu(t *testing.T) {
	home := NewHome(en, nil)

	tr, ok := home.HandleKey("r")
	require.True(t, ok)
	assert.Equal(t, ResultsList, tr.To)

	_, ok = home.HandleKey("down")
	assert.False(t, ok)
	tr, ok = home.HandleKey("enter")
	require.True(t, ok)
	assert.Equal(t, ResultsList, tr.To)

	tr, ok = home.HandleKey("h")
	require.True(t, ok)
	assert.Equal(t, Help, tr.To)

	_, ok = home.HandleKey("x")
	assert.False(t, ok)

	assert.Contains(t, home.View(40, 20), "Tests to do")
}

func TestListScreenConfirmTargets(t *testing.T) {
	items := []quiz.Summary{{ID: "1", Title: "[2025-01-01] One"}, {ID: "2", Title: "[2025-01-02] Two"}}

	tests := NewList(TestList, en, nil)
	tests.SetItems(items)
	tests.HandleKey("down")
	tr, ok := tests.HandleKey("enter")
	require.True(t, ok)
	assert.Equal(t, Transition{To: Runner, QuizID: "2"}, tr)

	results := NewList(ResultsList, en, nil)
	results.SetItems(items)
	tr, ok = results.HandleKey("enter")
	require.True(t, ok)
	assert.Equal(t, Transition{To: ResultsDetail, QuizID: "1"}, tr)

	tr, ok = results.HandleKey("b")
	require.True(t, ok)
	assert.Equal(t, Home, tr.To)
}

func TestListScreenEmptyAndShrinking(t *testing.T) {
	list := NewList(RerunList, en, nil)
	_, ok := list.HandleKey("enter")
	assert.False(t, ok)
	assert.Contains(t, list.View(40, 20), "Nothing here yet.")

	list.SetItems([]quiz.Summary{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	list.HandleKey("down")
	list.HandleKey("down")
	list.SetItems([]quiz.Summary{{ID: "1"}})

	item, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, "1", item.ID)
}

func TestDetailScreenBackTarget(t *testing.T) {
	detail := NewDetail(en, nil)
	assert.Contains(t, detail.View(40, 20), "No result to show.")

	detail.SetResult(quiz.Result{
		QuizTitle: "[2025-01-01] Verbs",
		Answers: []quiz.Answer{
			{QuestionText: "Past of go", Choices: []string{"went", "goed", "gone", "go"}, CorrectIndex: 0, Given: 0, IsCorrect: true, ElapsedSeconds: 2},
			{QuestionText: "Past of see", Choices: []string{"seed", "saw", "seen", "see"}, CorrectIndex: 1, Given: 2, ElapsedSeconds: 5},
		},
		TotalElapsedSeconds: 8,
	}, RerunList)
	assert.Equal(t, Fresh, detail.Frame().State())

	view := detail.View(40, 0)
	assert.Contains(t, view, "Result: [2025-01-01] Verbs")
	assert.Contains(t, view, "Score: 1/2")
	assert.Contains(t, view, "Your answer: seen")
	assert.Contains(t, view, "Correct answer: saw")

	tr, ok := detail.HandleKey("b")
	require.True(t, ok)
	assert.Equal(t, RerunList, tr.To)
}

func TestHelpScreenKeys(t *testing.T) {
	help := NewHelp(en, nil, "import")

	tr, ok := help.HandleKey("c")
	require.True(t, ok)
	assert.True(t, tr.ChangeLocale)
	assert.Equal(t, Help, tr.To)

	tr, ok = help.HandleKey("i")
	require.True(t, ok)
	assert.Equal(t, Importer, tr.To)

	assert.Contains(t, help.View(40, 20), "import")
	help.SetText(pl)
	assert.Contains(t, help.View(40, 20), "Pomoc")
}

func TestImportLogScreen(t *testing.T) {
	log := NewImportLog(en, nil)
	log.SetLines([]string{"Parsing a.txt", "Imported 0 of 1 files."})

	assert.Contains(t, log.View(40, 20), "Imported 0 of 1 files.")
	tr, ok := log.HandleKey("b")
	require.True(t, ok)
	assert.Equal(t, Help, tr.To)
}
