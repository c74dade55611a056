package config

import (
	"log/slog"
)

// Store binds a Config to its file so callers can update one preference
// without handling paths.
type Store struct {
	path string
	cfg  Config
	log  *slog.Logger
}

// Open loads the file at path, falling back to the defaults when the file
// is unreadable or invalid.
func Open(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}

	cfg, err := Load(path)
	if err != nil {
		log.Warn("config unusable, using defaults", "path", path, "err", err)
	}
	return &Store{path: path, cfg: cfg, log: log}
}

func (s *Store) Config() Config {
	return s.cfg
}

func (s *Store) Path() string {
	return s.path
}

// SaveLocale writes the new locale code back to disk.
func (s *Store) SaveLocale(code string) error {
	next := s.cfg
	next.Lang = code
	if err := Save(s.path, next); err != nil {
		return err
	}

	s.cfg = next
	s.log.Info("locale saved", "lang", code, "path", s.path)
	return nil
}
