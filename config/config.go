package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix of the environment variables overriding the configuration
const EnvPrefix = "SELECTOR"

// Config holds all the command configuration
type Config struct {
	// Catalogue sources
	Selector2Catalogue string `mapstructure:"selector2_catalogue"`
	Selector3Catalogue string `mapstructure:"selector3_catalogue"`

	// Rollout settings
	Episodes int    `mapstructure:"episodes"`
	Horizon  int    `mapstructure:"horizon"`
	Runs     int    `mapstructure:"runs"`
	SavePath string `mapstructure:"save"`
	LogEvery int    `mapstructure:"log_every"`

	// Trace recording: "", "file" or "redis"
	Record      string `mapstructure:"record"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisPrefix string `mapstructure:"redis_prefix"`

	// Server
	ListenAddr string `mapstructure:"listen_addr"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Selector2Catalogue: "data/playerselector2_players.csv",
		Selector3Catalogue: "data/playerselector3_players.csv",
		Episodes:           1000,
		Horizon:            200,
		Runs:               1,
		SavePath:           "results",
		LogEvery:           100,
		Record:             "",
		RedisAddr:          "127.0.0.1:6379",
		RedisPrefix:        "selector",
		ListenAddr:         ":5000",
		LogLevel:           "info",
	}
}

// SetDefaults registers the defaults in v so that unset keys fall back to them
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("selector2_catalogue", d.Selector2Catalogue)
	v.SetDefault("selector3_catalogue", d.Selector3Catalogue)
	v.SetDefault("episodes", d.Episodes)
	v.SetDefault("horizon", d.Horizon)
	v.SetDefault("runs", d.Runs)
	v.SetDefault("save", d.SavePath)
	v.SetDefault("log_every", d.LogEvery)
	v.SetDefault("record", d.Record)
	v.SetDefault("redis_addr", d.RedisAddr)
	v.SetDefault("redis_prefix", d.RedisPrefix)
	v.SetDefault("listen_addr", d.ListenAddr)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads the optional .env and config files, the environment and
// whatever flags were bound to v
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive")
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive")
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive")
	}
	switch c.Record {
	case "", "file":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required when recording to redis")
		}
	default:
		return fmt.Errorf("unknown record sink %q", c.Record)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Logger builds the logger for the configured level
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
