// Package config loads druzhok's settings from defaults, an optional YAML
// file and DRUZHOK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Locale string       `mapstructure:"locale"`
	Speech SpeechConfig `mapstructure:"speech"`
	Log    LogConfig    `mapstructure:"log"`
	Seed   uint64       `mapstructure:"seed"` // 0 picks a random seed
}

// SpeechConfig controls reading texts aloud.
type SpeechConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Command string  `mapstructure:"command"` // empty means detect espeak-ng, espeak or say
	Rate    float64 `mapstructure:"rate"`
}

// LogConfig controls the log file. The TUI owns the terminal, so logs never
// go to stdout.
type LogConfig struct {
	File  string `mapstructure:"file"` // empty disables logging
	Level string `mapstructure:"level"`
}

// DefaultConfig returns a new configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Locale: "uk-UA",
		Speech: SpeechConfig{
			Enabled: true,
			Rate:    1,
		},
		Log: LogConfig{
			File:  filepath.Join(os.TempDir(), "druzhok.log"),
			Level: "info",
		},
	}
}

// Load reads configuration from configPath, or from config.yaml in the
// working directory or ~/.config/druzhok when configPath is empty. A missing
// file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DRUZHOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/druzhok")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot check by type alone.
func (c *Config) Validate() error {
	if c.Locale == "" {
		return fmt.Errorf("locale is required")
	}
	if c.Speech.Rate <= 0 || c.Speech.Rate > 4 {
		return fmt.Errorf("invalid speech rate: %v (must be in (0, 4])", c.Speech.Rate)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	return nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "druzhok", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("speech.enabled", defaults.Speech.Enabled)
	v.SetDefault("speech.command", defaults.Speech.Command)
	v.SetDefault("speech.rate", defaults.Speech.Rate)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("seed", defaults.Seed)
}
