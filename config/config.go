package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/git"
	"github.com/jmgilman/go/gitcli/pipe"
	"github.com/jmgilman/go/gitcli/runner"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variable overrides.
	EnvPrefix = "GITCLI"

	// AppName is the directory under the user config dir holding the file.
	AppName = "gitcli"

	// DefaultConfigName is the file name searched for, without extension.
	DefaultConfigName = "config"
)

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"git-path":     "git.path",
	"min-version":  "git.min_version",
	"buffer-size":  "run.buffer_size",
	"kill-timeout": "run.kill_timeout",
	"timeout":      "run.timeout",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"output":       "output.format",
}

// Config holds all gitcli settings.
type Config struct {
	Git    GitConfig    `mapstructure:"git" yaml:"git"`
	Run    RunConfig    `mapstructure:"run" yaml:"run"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// File is the configuration file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

// GitConfig configures the git binary and its environment.
type GitConfig struct {
	Path       string            `mapstructure:"path" yaml:"path"`
	MinVersion string            `mapstructure:"min_version" yaml:"min_version"`
	Env        map[string]string `mapstructure:"env" yaml:"env,omitempty"`
}

// RunConfig configures how git processes are supervised.
type RunConfig struct {
	BufferSize  int           `mapstructure:"buffer_size" yaml:"buffer_size"`
	KillTimeout time.Duration `mapstructure:"kill_timeout" yaml:"kill_timeout"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// OutputConfig configures how the CLI renders events and failures.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Git: GitConfig{
			Path:       "git",
			MinVersion: git.DefaultMinVersion.String(),
			Env:        map[string]string{},
		},
		Run: RunConfig{
			BufferSize:  pipe.DefaultCapacity,
			KillTimeout: runner.DefaultKillTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Load merges defaults, the configuration file, GITCLI_* environment
// variables and any changed flags in flags, then validates the result.
//
// When file is empty the default location is searched and a missing file is
// ignored. An explicit file that cannot be read is an error.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !stderrors.As(err, &notFound) {
			return nil, errors.Wrapf(err, errors.CodeInvalidInput, "failed to read config file %q", file)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrapf(err, errors.CodeInternal, "failed to bind flag --%s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to decode configuration")
	}
	cfg.File = v.ConfigFileUsed()
	cfg.Git.Env = normalizeEnv(cfg.Git.Env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("git.path", d.Git.Path)
	v.SetDefault("git.min_version", d.Git.MinVersion)
	v.SetDefault("git.env", d.Git.Env)
	v.SetDefault("run.buffer_size", d.Run.BufferSize)
	v.SetDefault("run.kill_timeout", d.Run.KillTimeout)
	v.SetDefault("run.timeout", d.Run.Timeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", d.Output.Format)
}

// normalizeEnv upper-cases variable names, which viper lower-cases when
// reading maps.
func normalizeEnv(env map[string]string) map[string]string {
	out := make(map[string]string, len(env))
	for k, v := range env {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Git.Path == "" {
		return errors.New(errors.CodeInvalidInput, "git.path must not be empty")
	}
	if _, err := git.ParseVersion(c.Git.MinVersion); err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, "invalid git.min_version")
	}
	if c.Run.BufferSize <= 0 {
		return errors.Newf(errors.CodeInvalidInput, "run.buffer_size must be positive, got %d", c.Run.BufferSize)
	}
	if c.Run.KillTimeout < 0 {
		return errors.New(errors.CodeInvalidInput, "run.kill_timeout must not be negative")
	}
	if c.Run.Timeout < 0 {
		return errors.New(errors.CodeInvalidInput, "run.timeout must not be negative")
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Newf(errors.CodeInvalidInput, "log.format must be text or json, got %q", c.Log.Format)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.CodeInvalidInput, "output.format must be text, json or yaml, got %q", c.Output.Format)
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, errors.Wrapf(err, errors.CodeInvalidInput, "invalid log.level %q", c.Log.Level)
	}
	return level, nil
}

// Logger builds the slog logger described by the log section, writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch c.Log.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Log.Format)
	}
}

// ClientOptions translates the configuration into git.Client options.
func (c *Config) ClientOptions(logger *slog.Logger) ([]git.Option, error) {
	minVersion, err := git.ParseVersion(c.Git.MinVersion)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid git.min_version")
	}

	opts := []git.Option{
		git.WithGitPath(c.Git.Path),
		git.WithMinVersion(minVersion),
		git.WithBufferSize(c.Run.BufferSize),
		git.WithKillTimeout(c.Run.KillTimeout),
	}
	if len(c.Git.Env) > 0 {
		opts = append(opts, git.WithEnv(c.Git.Env))
	}
	if c.Run.Timeout > 0 {
		opts = append(opts, git.WithTimeout(c.Run.Timeout))
	}
	if logger != nil {
		opts = append(opts, git.WithLogger(logger))
	}
	return opts, nil
}
