// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-purge/pkg/remover"
	"github.com/joomcode/errorx"
	"github.com/spf13/viper"
)

const EnvPrefix = "SOLO_PURGE"

// Config holds the global configuration for the application.
type Config struct {
	Log     logx.LoggingConfig `yaml:"log" json:"log"`
	Remover remover.Config     `yaml:"remover" json:"remover"`
}

// Validate checks the remover section; logging is validated by logx on initialization.
func (c Config) Validate() error {
	if err := c.Remover.Validate(); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid remover configuration")
	}

	return nil
}

func defaults() Config {
	return Config{
		Log: logx.LoggingConfig{
			Level:          "info",
			ConsoleLogging: true,
			FileLogging:    false,
		},
		Remover: remover.DefaultConfig(),
	}
}

var globalConfig = defaults()

// Initialize loads the configuration from the specified file.
// With an empty path the built-in defaults are used and the environment is not consulted.
//
// Parameters:
//   - path: The path to the configuration file.
//
// Returns:
//   - An error if the configuration cannot be loaded or is invalid.
func Initialize(path string) error {
	cfg := defaults()

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		err := v.ReadInConfig()
		if err != nil {
			return NotFoundError.Wrap(err, "failed to read config file: %s", path).
				WithProperty(errorx.PropertyPayload(), path)
		}

		if err := v.Unmarshal(&cfg); err != nil {
			return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
				WithProperty(errorx.PropertyPayload(), path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	globalConfig = cfg
	return nil
}

// Get returns the loaded configuration.
func Get() Config {
	return globalConfig
}

func Set(c *Config) error {
	if c == nil {
		return errorx.IllegalArgument.New("config is required")
	}

	if err := c.Validate(); err != nil {
		return err
	}

	globalConfig = *c
	return nil
}

// Reset restores the built-in defaults.
func Reset() {
	globalConfig = defaults()
}
