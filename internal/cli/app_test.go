package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltr-quiz/internal/quiz"
	"ltr-quiz/internal/quiz/sqlite"
)

func testOptions(t *testing.T) Options {
	t.Helper()

	root := t.TempDir()
	return Options{
		DBPath:       filepath.Join(root, "ltr.db"),
		InboxDir:     filepath.Join(root, "import"),
		ProcessedDir: filepath.Join(root, "finished"),
		ConfigPath:   filepath.Join(root, "config.yaml"),
		LogFile:      filepath.Join(root, "ltr.log"),
		LogLevel:     "debug",
		ImportOnly:   true,
	}
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions(nil, func(string) string { return "" })
	require.NoError(t, err)

	assert.Equal(t, "ltr.db", opts.DBPath)
	assert.Equal(t, "import", opts.InboxDir)
	assert.Equal(t, "finished", opts.ProcessedDir)
	assert.Equal(t, "ltr.log", opts.LogFile)
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.RemoveOriginals)
	assert.False(t, opts.ImportOnly)
}

func TestParseOptionsEnvThenFlags(t *testing.T) {
	env := map[string]string{
		"LTR_DB":               "env.db",
		"LTR_INBOX":            "env-inbox",
		"LTR_REMOVE_ORIGINALS": "true",
	}
	getenv := func(key string) string { return env[key] }

	opts, err := ParseOptions([]string{"--db", "flag.db", "--import-only"}, getenv)
	require.NoError(t, err)

	assert.Equal(t, "flag.db", opts.DBPath)
	assert.Equal(t, "env-inbox", opts.InboxDir)
	assert.True(t, opts.RemoveOriginals)
	assert.True(t, opts.ImportOnly)
}

func TestParseOptionsRejectsUnknownFlag(t *testing.T) {
	_, err := ParseOptions([]string{"--nope"}, func(string) string { return "" })
	assert.Error(t, err)
}

func TestParseOptionsHelpIsNotAFailure(t *testing.T) {
	_, err := ParseOptions([]string{"--help"}, func(string) string { return "" })
	require.Error(t, err)
	assert.True(t, IsHelp(err))

	_, err = ParseOptions([]string{"--nope"}, func(string) string { return "" })
	assert.False(t, IsHelp(err))
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LTR_TEST_VALUE=from-file\n"), 0o644))
	t.Setenv("LTR_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("LTR_TEST_VALUE"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("LTR_TEST_VALUE"))
}

func TestRunImportOnlyPrintsLogAndStoresQuiz(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.MkdirAll(opts.InboxDir, 0o755))
	source := "Phrasal verbs====Give ... smoking----in\n+up\nover\nout====Look ... the kids----+after\nup\ninto\non"
	require.NoError(t, os.WriteFile(filepath.Join(opts.InboxDir, "verbs.txt"), []byte(source), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(opts.InboxDir, "demo.txt"), []byte("Demo====Q1----A\n+B\nC\nD"), 0o644))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), strings.NewReader(""), &out, opts))

	assert.Equal(t, strings.Join([]string{
		"Parsing demo.txt",
		"demo.txt: invalid quiz, at least 2 questions are needed",
		"Parsing verbs.txt",
		`verbs.txt: "Phrasal verbs" is valid`,
		"verbs.txt: saved as test #1",
		"Imported 1 of 2 files.",
	}, "\n")+"\n", out.String())

	store, err := sqlite.NewSQLiteStore(opts.DBPath)
	require.NoError(t, err)
	defer store.Close()

	todo, err := store.ListByStatus(context.Background(), quiz.StatusNotStarted)
	require.NoError(t, err)
	require.Len(t, todo, 1)
	assert.Contains(t, todo[0].Title, "Phrasal verbs")

	logData, err := os.ReadFile(opts.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "quiz imported")
}

func TestRunImportOnlyTwiceKeepsOneQuiz(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.MkdirAll(opts.InboxDir, 0o755))
	source := "Phrasal verbs====Give ... smoking----in\n+up\nover\nout====Look ... the kids----+after\nup\ninto\non"
	require.NoError(t, os.WriteFile(filepath.Join(opts.InboxDir, "verbs.txt"), []byte(source), 0o644))

	for run := 0; run < 3; run++ {
		require.NoError(t, Run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, opts))
	}

	store, err := sqlite.NewSQLiteStore(opts.DBPath)
	require.NoError(t, err)
	defer store.Close()

	todo, err := store.ListByStatus(context.Background(), quiz.StatusNotStarted)
	require.NoError(t, err)
	assert.Len(t, todo, 1)
}

func TestRunImportOnlyUsesConfiguredLocale(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte("lang: pl\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), strings.NewReader(""), &out, opts))

	assert.Equal(t, "Zaimportowano 0 z 0 plików.\n", out.String())
}

func TestRunSeedFillsEmptyDatabase(t *testing.T) {
	opts := testOptions(t)
	opts.Seed = true

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), strings.NewReader(""), &out, opts))

	store, err := sqlite.NewSQLiteStore(opts.DBPath)
	require.NoError(t, err)
	defer store.Close()

	todo, err := store.ListByStatus(context.Background(), quiz.StatusNotStarted)
	require.NoError(t, err)
	assert.NotEmpty(t, todo)
}

func TestRunFailsOnUnusableDatabase(t *testing.T) {
	opts := testOptions(t)
	opts.DBPath = filepath.Join(t.TempDir(), "missing-dir", "ltr.db")

	err := Run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, opts)
	assert.ErrorContains(t, err, "open database")
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	opts := testOptions(t)
	opts.LogLevel = "loud"

	assert.Error(t, Run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, opts))
}
