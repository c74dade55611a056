// Package importer loads quiz files dropped into an inbox directory.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"

	"ltr-quiz/internal/i18n"
	"ltr-quiz/internal/quiz"
)

const (
	DefaultInboxDir     = "import"
	DefaultProcessedDir = "finished"
)

type Config struct {
	InboxDir     string
	ProcessedDir string
	// RemoveOriginals deletes inbox files once they are copied to
	// ProcessedDir. Off by default so rejected files stay inspectable.
	RemoveOriginals bool
}

type Importer struct {
	cfg   Config
	saver quiz.QuizSaver
	log   *slog.Logger
	now   func() time.Time
}

func New(cfg Config, saver quiz.QuizSaver, log *slog.Logger) *Importer {
	if cfg.InboxDir == "" {
		cfg.InboxDir = DefaultInboxDir
	}
	if cfg.ProcessedDir == "" {
		cfg.ProcessedDir = DefaultProcessedDir
	}
	if log == nil {
		log = slog.Default()
	}
	return &Importer{
		cfg:   cfg,
		saver: saver,
		log:   log,
		now:   time.Now,
	}
}

func (i *Importer) InboxDir() string {
	return i.cfg.InboxDir
}

// Import processes every regular file in the inbox in name order and returns
// the human-readable log. One bad file never stops the rest.
func (i *Importer) Import(ctx context.Context, locale language.Tag) []string {
	text := i18n.New(locale)
	lines := make([]string, 0)

	entries, err := i.inboxFiles()
	if err != nil {
		i.log.Error("open inbox failed", "dir", i.cfg.InboxDir, "err", err)
		lines = append(lines, text.T(i18n.ImportInboxError, i.cfg.InboxDir, err))
		return append(lines, text.T(i18n.ImportSummary, 0, 0))
	}

	imported, attempted := 0, 0
	for _, name := range entries {
		if i.alreadyImported(name) {
			i.log.Debug("quiz file already imported", "file", name)
			lines = append(lines, text.T(i18n.ImportSkipped, name))
			continue
		}

		attempted++
		fileLines, ok := i.importFile(ctx, text, name)
		lines = append(lines, fileLines...)
		if ok {
			imported++
		}
	}

	i.log.Info("import finished",
		"files", attempted,
		"skipped", len(entries)-attempted,
		"imported", imported,
	)
	return append(lines, text.T(i18n.ImportSummary, imported, attempted))
}

// alreadyImported reports whether the processed dir holds a byte-identical
// copy of the inbox file. Kept originals are not imported twice.
func (i *Importer) alreadyImported(name string) bool {
	done, err := os.ReadFile(filepath.Join(i.cfg.ProcessedDir, name))
	if err != nil {
		return false
	}
	raw, err := os.ReadFile(filepath.Join(i.cfg.InboxDir, name))
	if err != nil {
		return false
	}
	return bytes.Equal(done, raw)
}

func (i *Importer) importFile(ctx context.Context, text i18n.Text, name string) ([]string, bool) {
	lines := []string{text.T(i18n.ImportParsing, name)}
	path := filepath.Join(i.cfg.InboxDir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		i.log.Warn("read quiz file failed", "file", name, "err", err)
		return append(lines, text.T(i18n.ImportReadFailed, name, err)), false
	}

	q := Parse(string(raw))
	q.Date = quiz.Today(i.now())

	saved := false
	if err := Validate(q); err != nil {
		reason := err.Error()
		var invalid *InvalidError
		if errors.As(err, &invalid) {
			reason = invalid.Reason(text)
		}
		i.log.Info("quiz rejected", "file", name, "err", err)
		lines = append(lines, text.T(i18n.ImportInvalid, name, reason))
	} else {
		lines = append(lines, text.T(i18n.ImportValid, name, q.Title))

		id, err := i.saver.SaveNewQuiz(ctx, q)
		if err != nil {
			i.log.Error("save imported quiz failed", "file", name, "err", err)
			lines = append(lines, text.T(i18n.ImportSaveFailed, name, err))
		} else {
			i.log.Info("quiz imported", "file", name, "quiz_id", id, "questions", len(q.Questions))
			lines = append(lines, text.T(i18n.ImportSaved, name, id))
			saved = true
		}
	}

	if err := i.moveToProcessed(name); err != nil {
		i.log.Warn("move quiz file failed", "file", name, "err", err)
		lines = append(lines, text.T(i18n.ImportMoveFailed, name, err))
	}
	return lines, saved
}

// inboxFiles creates the inbox when missing and lists its regular files.
// os.ReadDir already sorts by name.
func (i *Importer) inboxFiles() ([]string, error) {
	if err := os.MkdirAll(i.cfg.InboxDir, 0o755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(i.cfg.InboxDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (i *Importer) moveToProcessed(name string) error {
	if err := os.MkdirAll(i.cfg.ProcessedDir, 0o755); err != nil {
		return err
	}

	src := filepath.Join(i.cfg.InboxDir, name)
	if err := copyFile(src, filepath.Join(i.cfg.ProcessedDir, name)); err != nil {
		return err
	}
	if !i.cfg.RemoveOriginals {
		return nil
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
