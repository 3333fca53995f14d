package internal

import (
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName names the binary, the config directory and env prefix.
	DefaultAppName     = "rdfa"
	DefaultEnvPrefix   = "RDFA"
	DefaultConfigPath  = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultCacheDir    = filepath.Join(DefaultConfigPath, ".cache")
	DefaultLogFile     = filepath.Join(DefaultCacheDir, DefaultAppName+".log")
	DefaultConfigName  = "config"
	DefaultResultsFile = "results.txt"

	// Default HTTP listen address for the read-only viewer
	DefaultServerAddr = ":8080"
)

// getHomeDir falls back to the system temp directory when HOME is unset.
func getHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	log.Printf("Unable to get home directory, using %s", os.TempDir())
	return os.TempDir()
}

// GetLogger returns the process-level zerolog logger used for startup and
// fatal errors, before the structured slog logger is configured.
func GetLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("app", DefaultAppName).Logger()
}
