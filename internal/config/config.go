package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "FRENCHDECK"

// List modes for printing the whole deck.
const (
	ListNone    = "none"
	ListForward = "forward"
	ListReverse = "reverse"
)

type Config struct {
	// RNG seed (0 => time-based)
	Seed int64 `mapstructure:"seed"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	List string `mapstructure:"list"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("list", ListNone)
}

// Load reads FRENCHDECK_* variables, after loading envFiles (or ./.env when none
// are given) into the process environment. Missing .env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)
	return FromViper(viper.New())
}

// FromViper applies defaults and environment binding to v, then decodes it.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.List = strings.ToLower(strings.TrimSpace(cfg.List))
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %q (must be text or json)", c.LogFormat)
	}
	switch c.List {
	case ListNone, ListForward, ListReverse:
	default:
		return fmt.Errorf("invalid list mode: %q", c.List)
	}
	if c.LogLevel == "" {
		return fmt.Errorf("log_level must not be empty")
	}
	return nil
}
