package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	internal "github.com/ZanzyTHEbar/rdfind-analyzer/rdfa"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Report    ReportConfig    `mapstructure:"report"`
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Output    OutputConfig    `mapstructure:"output"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
}

// ReportConfig controls how results files are read.
type ReportConfig struct {
	Path        string `mapstructure:"path"`
	Strict      bool   `mapstructure:"strict"`
	MaxLineSize int    `mapstructure:"maxLineSize"`
}

// LogConfig stores logging destinations.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ServerConfig stores the read-only HTTP viewer settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// FilterConfig stores gitignore-style patterns hidden from listings.
type FilterConfig struct {
	Patterns []string `mapstructure:"patterns"`
}

// OutputConfig stores the default rendering of command output.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// WorkspaceConfig bounds concurrent loading of several results files.
type WorkspaceConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// Output formats understood by the export command and the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	DefaultConcurrency = 4
	maxConcurrency     = 32
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig reads configuration from file or environment variables.
// An empty configPath searches the working directory and the user config
// directory for config.yaml; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName(internal.DefaultConfigName)
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix(internal.DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // report.strict becomes RDFA_REPORT_STRICT
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file; defaults and environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.path", internal.DefaultResultsFile)
	v.SetDefault("report.strict", false)
	v.SetDefault("report.maxLineSize", 1<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", internal.DefaultLogFile)
	v.SetDefault("server.addr", internal.DefaultServerAddr)
	v.SetDefault("filter.patterns", []string{})
	v.SetDefault("output.format", FormatText)
	v.SetDefault("workspace.concurrency", DefaultConcurrency)
}

func (c *Config) normalize() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if err := ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Report.MaxLineSize <= 0 {
		return fmt.Errorf("%w: report.maxLineSize must be positive, got %d", ErrInvalidConfig, c.Report.MaxLineSize)
	}

	if c.Workspace.Concurrency < 1 {
		c.Workspace.Concurrency = 1
	}
	if c.Workspace.Concurrency > maxConcurrency {
		c.Workspace.Concurrency = maxConcurrency
	}
	return nil
}

// ValidateFormat checks that format is one of the supported output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: output format must be text, json or yaml, got %q", ErrInvalidConfig, format)
	}
}

// ParseLogLevel maps a level name to its slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, level)
	}
}
