package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	internal "github.com/ZanzyTHEbar/rdfind-analyzer/rdfa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
	origDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	var err error
	suite.origDir, err = os.Getwd()
	require.NoError(suite.T(), err)

	suite.tempDir = suite.T().TempDir()
	require.NoError(suite.T(), os.Chdir(suite.tempDir))
}

func (suite *ConfigTestSuite) TearDownTest() {
	if suite.origDir != "" {
		os.Chdir(suite.origDir)
	}
}

func (suite *ConfigTestSuite) writeConfig(name, content string) string {
	path := filepath.Join(suite.tempDir, name)
	require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), internal.DefaultResultsFile, cfg.Report.Path)
	assert.False(suite.T(), cfg.Report.Strict)
	assert.Equal(suite.T(), 1<<20, cfg.Report.MaxLineSize)
	assert.Equal(suite.T(), "info", cfg.Log.Level)
	assert.Equal(suite.T(), internal.DefaultLogFile, cfg.Log.File)
	assert.Equal(suite.T(), internal.DefaultServerAddr, cfg.Server.Addr)
	assert.Empty(suite.T(), cfg.Filter.Patterns)
	assert.Equal(suite.T(), FormatText, cfg.Output.Format)
	assert.Equal(suite.T(), DefaultConcurrency, cfg.Workspace.Concurrency)
}

func (suite *ConfigTestSuite) TestLoadConfigWithFile() {
	suite.writeConfig("config.yaml", `
report:
  path: "/data/results.txt"
  strict: true
  maxLineSize: 4096
log:
  level: debug
  file: /var/log/rdfa.log
server:
  addr: "127.0.0.1:9000"
filter:
  patterns:
    - "*.tmp"
    - "node_modules/"
output:
  format: JSON
workspace:
  concurrency: 8
`)

	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "/data/results.txt", cfg.Report.Path)
	assert.True(suite.T(), cfg.Report.Strict)
	assert.Equal(suite.T(), 4096, cfg.Report.MaxLineSize)
	assert.Equal(suite.T(), "debug", cfg.Log.Level)
	assert.Equal(suite.T(), "/var/log/rdfa.log", cfg.Log.File)
	assert.Equal(suite.T(), "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(suite.T(), []string{"*.tmp", "node_modules/"}, cfg.Filter.Patterns)
	assert.Equal(suite.T(), FormatJSON, cfg.Output.Format, "format should be normalized to lower case")
	assert.Equal(suite.T(), 8, cfg.Workspace.Concurrency)
}

func (suite *ConfigTestSuite) TestLoadConfigExplicitPath() {
	path := suite.writeConfig("custom.yaml", "report:\n  path: other.txt\n")

	cfg, err := LoadConfig(path)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "other.txt", cfg.Report.Path)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingExplicitPath() {
	_, err := LoadConfig(filepath.Join(suite.tempDir, "nope.yaml"))
	assert.Error(suite.T(), err)
}

func (suite *ConfigTestSuite) TestLoadConfigMalformed() {
	suite.writeConfig("config.yaml", "report: [unclosed\n")

	_, err := LoadConfig("")
	assert.Error(suite.T(), err)
}

func (suite *ConfigTestSuite) TestEnvironmentOverrides() {
	suite.T().Setenv("RDFA_REPORT_PATH", "/env/results.txt")
	suite.T().Setenv("RDFA_REPORT_STRICT", "true")
	suite.T().Setenv("RDFA_OUTPUT_FORMAT", "yaml")

	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/env/results.txt", cfg.Report.Path)
	assert.True(suite.T(), cfg.Report.Strict)
	assert.Equal(suite.T(), FormatYAML, cfg.Output.Format)
}

func (suite *ConfigTestSuite) TestInvalidValues() {
	suite.Run("unknown format", func() {
		suite.writeConfig("config.yaml", "output:\n  format: xml\n")
		_, err := LoadConfig("")
		assert.ErrorIs(suite.T(), err, ErrInvalidConfig)
	})

	suite.Run("unknown log level", func() {
		suite.writeConfig("config.yaml", "log:\n  level: loud\n")
		_, err := LoadConfig("")
		assert.ErrorIs(suite.T(), err, ErrInvalidConfig)
	})

	suite.Run("non positive line size", func() {
		suite.writeConfig("config.yaml", "report:\n  maxLineSize: 0\n")
		_, err := LoadConfig("")
		assert.ErrorIs(suite.T(), err, ErrInvalidConfig)
	})
}

func (suite *ConfigTestSuite) TestConcurrencyIsClamped() {
	suite.writeConfig("config.yaml", "workspace:\n  concurrency: 500\n")
	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 32, cfg.Workspace.Concurrency)

	suite.writeConfig("config.yaml", "workspace:\n  concurrency: -3\n")
	cfg, err = LoadConfig("")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, cfg.Workspace.Concurrency)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := NewLogger(&stderr, &file, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("results file loaded", "groups", 3)

	assert.Contains(t, stderr.String(), "results file loaded")
	assert.NotContains(t, stderr.String(), "hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &record))
	assert.Equal(t, "results file loaded", record["msg"])
	assert.Equal(t, float64(3), record["groups"])
}

func TestNewLoggerConsoleOnly(t *testing.T) {
	var stderr bytes.Buffer
	logger := NewLogger(&stderr, nil, slog.LevelDebug)

	logger.Debug("shown", "k", "v")
	assert.Contains(t, stderr.String(), "k=v")
}

func TestSetupLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "rdfa.log")

	logger, cleanup := SetupLogger(logFile, slog.LevelInfo)
	logger.Info("written to file")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestSetupLoggerFallsBackToStderr(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	logger, cleanup := SetupLogger(filepath.Join(blocker, "rdfa.log"), slog.LevelInfo)
	require.NotNil(t, logger)
	assert.NoError(t, cleanup())
}
