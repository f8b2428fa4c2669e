package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the command settings. Values come from flags, then STATICVEC_* environment
// variables, then the optional config file, then defaults.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	KeepGoing bool   `mapstructure:"keep_going"`
}

func DefaultConfig() Config {
	return Config{LogLevel: "info", LogFormat: "console"}
}

// loadConfig resolves the configuration for cmd. cfgFile may be empty.
func loadConfig(cmd *cobra.Command, cfgFile string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("keep_going", defaults.KeepGoing)

	v.SetEnvPrefix("STATICVEC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
		"keep_going": "keep-going",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a logger writing to stderr. Format is "json" or "console".
func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	var zc zap.Config
	switch cfg.LogFormat {
	case "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("log format %q: want json or console", cfg.LogFormat)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
