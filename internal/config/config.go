// Package config resolves CLI settings from flags, FIELDMAP_* environment
// variables and an optional fieldmap config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "FIELDMAP"

// Name is the config file base name searched for when no file is given.
const Name = "fieldmap"

// Keys shared by flags, env and config file.
const (
	KeyMapping   = "mapping"
	KeyType      = "type"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Mapping is the default mapping source path.
	Mapping string `mapstructure:"mapping"`
	// Type is the default transaction type for render.
	Type      string `mapstructure:"type"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// Load resolves configuration. file names an explicit config file, which
// must exist; when empty, fieldmap.{yaml,yml,json,toml} is looked up in
// the working directory and the user config directory, and a miss is not
// an error. Flags in fs, when non-nil, take precedence over everything.
func Load(fs *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyMapping, KeyType, KeyLogLevel, KeyLogFormat} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := readConfigFile(v, file); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	cfg.File = v.ConfigFileUsed()

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", file, err)
		}

		return nil
	}

	v.SetConfigName(Name)
	v.AddConfigPath(".")

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, Name))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}
