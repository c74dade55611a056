package cli

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Options struct {
	DBPath       string
	InboxDir     string
	ProcessedDir string
	ConfigPath   string
	LogFile      string
	LogLevel     string

	RemoveOriginals bool
	Seed            bool
	ImportOnly      bool
}

// ParseOptions reads flags from args. Environment variables (LTR_*) provide
// the defaults, so a flag always wins.
func ParseOptions(args []string, getenv func(string) string) (Options, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}
	envBool := func(key string) bool {
		v, err := strconv.ParseBool(strings.TrimSpace(getenv(key)))
		return err == nil && v
	}

	var opts Options
	flags := pflag.NewFlagSet("ltr", pflag.ContinueOnError)
	flags.StringVar(&opts.DBPath, "db", env("LTR_DB", "ltr.db"), "path of the SQLite database")
	flags.StringVar(&opts.InboxDir, "inbox", env("LTR_INBOX", "import"), "directory scanned for quiz files")
	flags.StringVar(&opts.ProcessedDir, "processed", env("LTR_PROCESSED", "finished"), "directory imported files are copied to")
	flags.StringVar(&opts.ConfigPath, "config", env("LTR_CONFIG", ""), "config file (default <user config dir>/ltr-app/config.yaml)")
	flags.StringVar(&opts.LogFile, "log-file", env("LTR_LOG_FILE", "ltr.log"), "file the log is appended to")
	flags.StringVar(&opts.LogLevel, "log-level", env("LTR_LOG_LEVEL", "info"), "debug, info, warn or error")
	flags.BoolVar(&opts.RemoveOriginals, "remove-originals", envBool("LTR_REMOVE_ORIGINALS"), "delete inbox files after copying them")
	flags.BoolVar(&opts.Seed, "seed", false, "add demo quizzes to an empty database")
	flags.BoolVar(&opts.ImportOnly, "import-only", false, "import the inbox, print the log and exit")

	if err := flags.Parse(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// IsHelp reports whether err only means that --help was asked for.
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
