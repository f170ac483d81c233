// Package config resolves mene settings from defaults, an optional config
// file, MENE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Workers int           `mapstructure:"workers"`
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

// SearchConfig bounds the cofactor and pathway searches. Zero limits mean none.
type SearchConfig struct {
	TimeLimit    time.Duration `mapstructure:"timeLimit"`
	NodeLimit    int64         `mapstructure:"nodeLimit"`
	MaxSolutions int           `mapstructure:"maxSolutions"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig selects the record encoding.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// ArchiveConfig enables the run archive when Path is set.
type ArchiveConfig struct {
	Path string `mapstructure:"path"`
}

// Keys shared with flag bindings.
const (
	KeyTimeLimit    = "search.timeLimit"
	KeyNodeLimit    = "search.nodeLimit"
	KeyMaxSolutions = "search.maxSolutions"
	KeyWorkers      = "workers"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyOutputFormat = "output.format"
	KeyArchivePath  = "archive.path"
)

// EnvPrefix prefixes environment overrides, e.g. MENE_SEARCH_TIMELIMIT.
const EnvPrefix = "MENE"

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Search:  SearchConfig{MaxSolutions: 1000},
		Workers: runtime.NumCPU(),
		Log:     LogConfig{Level: "info", Format: "text"},
		Output:  OutputConfig{Format: "json"},
	}
}

// New returns a viper instance carrying defaults and environment bindings.
// Callers bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(KeyTimeLimit, d.Search.TimeLimit)
	v.SetDefault(KeyNodeLimit, d.Search.NodeLimit)
	v.SetDefault(KeyMaxSolutions, d.Search.MaxSolutions)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyOutputFormat, d.Output.Format)
	v.SetDefault(KeyArchivePath, d.Archive.Path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file (or, when empty, mene.{yaml,toml,json} from the working
// directory or $HOME/.config/mene) into v and returns the validated result.
// A missing default file is not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("mene")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mene"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Search.TimeLimit < 0:
		return &ConfigError{Field: KeyTimeLimit, Message: "must not be negative"}
	case c.Search.NodeLimit < 0:
		return &ConfigError{Field: KeyNodeLimit, Message: "must not be negative"}
	case c.Search.MaxSolutions <= 0:
		return &ConfigError{Field: KeyMaxSolutions, Message: "must be positive"}
	case c.Workers <= 0:
		return &ConfigError{Field: KeyWorkers, Message: "must be positive"}
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: KeyLogFormat, Message: "must be text or json"}
	}
	switch strings.ToLower(c.Output.Format) {
	case "json", "yaml", "yml":
	default:
		return &ConfigError{Field: KeyOutputFormat, Message: "must be json or yaml"}
	}

	return nil
}

// ConfigError reports an invalid setting.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
