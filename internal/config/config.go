// Package config persists user preferences between runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	appDir   = "ltr-app"
	fileName = "config.yaml"

	DefaultLang = "en"
)

type Config struct {
	Lang string `yaml:"lang" validate:"required,oneof=en pl"`
}

func Default() Config {
	return Config{Lang: DefaultLang}
}

// DefaultPath is <user config dir>/ltr-app/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads and validates the file at path. A missing file yields the
// defaults without error; a broken one yields the defaults and the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Lang = strings.ToLower(strings.TrimSpace(cfg.Lang))

	if err := validate(cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate config: %w", err)
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("field %q failed %q (value %q)", fieldErr.Field(), fieldErr.Tag(), fieldErr.Value()))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
	}
	return nil
}
