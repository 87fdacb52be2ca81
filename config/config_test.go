package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmgilman/go/gitcli/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.Git.Path, cfg.Git.Path)
	assert.Equal(t, "2.23.0", cfg.Git.MinVersion)
	assert.Equal(t, 64*1024, cfg.Run.BufferSize)
	assert.Equal(t, 5*time.Second, cfg.Run.KillTimeout)
	assert.Zero(t, cfg.Run.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Empty(t, cfg.File)
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, filepath.Join(dir, AppName, "config.yaml"), `
git:
  path: /opt/git/bin/git
log:
  level: debug
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "/opt/git/bin/git", cfg.Git.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, filepath.Join(t.TempDir(), "gitcli.yaml"), `
git:
  min_version: 2.30.1
  env:
    GIT_SSH_COMMAND: ssh -o BatchMode=yes
run:
  buffer_size: 4096
  kill_timeout: 2s
  timeout: 10m
output:
  format: json
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "2.30.1", cfg.Git.MinVersion)
	assert.Equal(t, map[string]string{"GIT_SSH_COMMAND": "ssh -o BatchMode=yes"}, cfg.Git.Env)
	assert.Equal(t, 4096, cfg.Run.BufferSize)
	assert.Equal(t, 2*time.Second, cfg.Run.KillTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Run.Timeout)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("GITCLI_RUN_KILL_TIMEOUT", "30s")
	t.Setenv("GITCLI_OUTPUT_FORMAT", "yaml")
	t.Setenv("GITCLI_GIT_PATH", "/usr/bin/git")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Run.KillTimeout)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, "/usr/bin/git", cfg.Git.Path)
}

func TestLoad_Flags(t *testing.T) {
	isolate(t)
	t.Setenv("GITCLI_LOG_LEVEL", "warn")
	path := writeConfig(t, filepath.Join(t.TempDir(), "gitcli.yaml"), "output:\n  format: json\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "text", "")
	flags.String("log-level", "info", "")
	flags.Duration("timeout", 0, "")
	require.NoError(t, flags.Parse([]string{"--output", "yaml", "--timeout", "1m"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Output.Format, "changed flag beats the file")
	assert.Equal(t, time.Minute, cfg.Run.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level, "unchanged flag does not beat the environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "empty git path", modify: func(c *Config) { c.Git.Path = "" }},
		{name: "bad min version", modify: func(c *Config) { c.Git.MinVersion = "two" }},
		{name: "zero buffer", modify: func(c *Config) { c.Run.BufferSize = 0 }},
		{name: "negative kill timeout", modify: func(c *Config) { c.Run.KillTimeout = -time.Second }},
		{name: "negative timeout", modify: func(c *Config) { c.Run.Timeout = -time.Second }},
		{name: "bad log level", modify: func(c *Config) { c.Log.Level = "loud" }},
		{name: "bad log format", modify: func(c *Config) { c.Log.Format = "xml" }},
		{name: "bad output format", modify: func(c *Config) { c.Output.Format = "table" }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	isolate(t)
	t.Setenv("GITCLI_LOG_FORMAT", "xml")

	_, err := Load("", nil)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"
	cfg.Log.Format = FormatJSON

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("operation", "fetch"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"operation":"fetch"`)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestClientOptions(t *testing.T) {
	cfg := Default()
	opts, err := cfg.ClientOptions(nil)
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	cfg.Git.Env = map[string]string{"GIT_TRACE": "1"}
	cfg.Run.Timeout = time.Minute
	opts, err = cfg.ClientOptions(slog.Default())
	require.NoError(t, err)
	assert.Len(t, opts, 7)

	cfg.Git.MinVersion = "bogus"
	_, err = cfg.ClientOptions(nil)
	assert.Error(t, err)
}
