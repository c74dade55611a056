package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"ltr-quiz/internal/config"
	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/importer"
	"ltr-quiz/internal/lib/slogcustom"
	"ltr-quiz/internal/quiz"
	"ltr-quiz/internal/quiz/sqlite"
	"ltr-quiz/internal/router"
)

// Run wires the store, config and importer and then either runs the
// terminal UI on in/out or, with ImportOnly, prints one import log to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	log, closeLog, err := openLogger(opts.LogFile, opts.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := sqlite.NewSQLiteStore(opts.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", opts.DBPath, err)
	}
	defer store.Close()

	if opts.Seed {
		added, err := store.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		log.Info("seed finished", "added", added)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	settings := config.Open(configPath, log)
	lang, _ := i18n.Parse(settings.Config().Lang)

	imp := importer.New(importer.Config{
		InboxDir:        opts.InboxDir,
		ProcessedDir:    opts.ProcessedDir,
		RemoveOriginals: opts.RemoveOriginals,
	}, store, log.With("component", "importer"))

	if opts.ImportOnly {
		for _, line := range imp.Import(ctx, lang) {
			fmt.Fprintln(out, line)
		}
		return nil
	}

	log.Info("starting", "db", opts.DBPath, "lang", i18n.Code(lang))
	model := router.New(ctx, router.Deps{
		Store:    quiz.NewService(store, log.With("component", "service")),
		Importer: imp,
		Locale:   settings,
		Log:      log.With("component", "router"),
		Colors:   !color.NoColor,
	}, lang)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// openLogger sends the log to a file because the terminal belongs to the UI.
func openLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	if path == "" || path == "-" {
		return slog.New(slogcustom.NewCustomHandler(io.Discard, lvl, false)), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	log := slog.New(slogcustom.NewCustomHandler(file, lvl, false))
	slog.SetDefault(log)
	return log, func() { _ = file.Close() }, nil
}
