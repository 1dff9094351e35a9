package config

import (
	"os"
	"strconv"
)

const (
	// DefaultGitBinary is the program used for branch queries and pushes
	DefaultGitBinary = "git"
	// DefaultRemote is the upstream remote for branch-aware pushes
	DefaultRemote = "origin"
)

var pushVerb = [2]string{"git", "push"}

// PushVerb returns the pair of leading tokens that identifies a push invocation.
func PushVerb() [2]string {
	return pushVerb
}

// LogConfig controls the optional rotating log file.
type LogConfig struct {
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Config holds the settings for a single gitp run.
type Config struct {
	GitBinary string
	Remote    string
	PushVerb  [2]string
	Debug     bool
	Log       LogConfig
}

// Default returns the built-in settings without consulting the environment.
func Default() *Config {
	return &Config{
		GitBinary: DefaultGitBinary,
		Remote:    DefaultRemote,
		PushVerb:  PushVerb(),
		Log: LogConfig{
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     30,
		},
	}
}

// Load returns the defaults with diagnostics overrides from the environment.
// Invalid numeric values are ignored.
func Load() *Config {
	cfg := Default()

	cfg.Debug = os.Getenv("GITP_DEBUG") != ""
	cfg.Log.File = os.Getenv("GITP_LOG_FILE")

	if n, ok := nonNegativeEnv("GITP_LOG_MAX_SIZE"); ok && n > 0 {
		cfg.Log.MaxSize = n
	}
	if n, ok := nonNegativeEnv("GITP_LOG_MAX_BACKUPS"); ok {
		cfg.Log.MaxBackups = n
	}
	if n, ok := nonNegativeEnv("GITP_LOG_MAX_AGE"); ok && n > 0 {
		cfg.Log.MaxAge = n
	}

	return cfg
}

// nonNegativeEnv parses a non-negative integer environment variable.
func nonNegativeEnv(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
