// Package config provides configuration types, defaults and loading for eru.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iw2rmb/eru/internal/logging"
	"github.com/iw2rmb/eru/syntax"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes environment overrides, e.g. ERU_TAB_STOP.
const EnvPrefix = "ERU"

// Config holds all configuration options for eru.
type Config struct {
	TabStop       int           `mapstructure:"tab_stop"`
	QuitTimes     int           `mapstructure:"quit_times"`    // extra ctrl+q presses needed with unsaved changes
	HistoryLimit  int           `mapstructure:"history_limit"` // undo steps kept, 0 keeps all
	SyntaxFile    string        `mapstructure:"syntax_file"`   // extra YAML profiles, tried before the built-in ones
	LogFile       string        `mapstructure:"log_file"`
	LogLevel      string        `mapstructure:"log_level"`
	StorePath     string        `mapstructure:"store_path"` // empty disables the session store
	StatusTimeout time.Duration `mapstructure:"status_timeout"`

	// Colors overrides highlight colors by class name, e.g. "keyword1": "11".
	Colors map[string]string `mapstructure:"colors"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		TabStop:       8,
		QuitTimes:     3,
		HistoryLimit:  1000,
		LogLevel:      "info",
		StatusTimeout: 5 * time.Second,
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("tab_stop", d.TabStop)
	v.SetDefault("quit_times", d.QuitTimes)
	v.SetDefault("history_limit", d.HistoryLimit)
	v.SetDefault("syntax_file", d.SyntaxFile)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("store_path", d.StorePath)
	v.SetDefault("status_timeout", d.StatusTimeout)
}

// DefaultDir is the per-user configuration directory.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "eru")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "eru")
}

// Load reads configuration into v and decodes it. An explicit cfgFile must
// exist; without one the default directory is searched and a missing file
// is not an error. Environment variables override file values.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir := DefaultDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value for range errors.
func (c Config) Validate() error {
	if c.TabStop < 1 || c.TabStop > 32 {
		return fmt.Errorf("%w: tab_stop %d out of range 1..32", ErrInvalidConfig, c.TabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("%w: quit_times must not be negative", ErrInvalidConfig)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative", ErrInvalidConfig)
	}
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.StatusTimeout < 0 {
		return fmt.Errorf("%w: status_timeout must not be negative", ErrInvalidConfig)
	}
	for name := range c.Colors {
		if _, ok := syntax.ParseClass(name); !ok {
			return fmt.Errorf("%w: unknown highlight class %q in colors", ErrInvalidConfig, name)
		}
	}
	return nil
}
