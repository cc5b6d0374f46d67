// Package config provides runtime configuration values for the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// StdStream is the path value that selects stdin or stdout.
const StdStream = "-"

// Config holds input/output locations, the emit order and logging knobs.
type Config struct {
	InputPath  string
	OutputPath string
	Order      string
	LogLevel   string
	LogFormat  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from the environment with defaults. If envFile
// is set it is loaded first; a missing file is not an error. Variables already
// present in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}
	return Config{
		InputPath:  getenv("GROCERY_INPUT", StdStream),
		OutputPath: getenv("GROCERY_OUTPUT", StdStream),
		Order:      getenv("GROCERY_ORDER", "reverse"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFormat:  getenv("LOG_FORMAT", "json"),
	}, nil
}
