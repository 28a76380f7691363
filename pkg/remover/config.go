// SPDX-License-Identifier: Apache-2.0

package remover

import (
	"strings"
)

const (
	BackendCommand = "command"
	BackendSystem  = "system"

	DefaultManager       = "pip"
	DefaultSubcommand    = "uninstall"
	DefaultAssumeYesFlag = "-y"
)

// Config selects and parameterizes the removal backend.
type Config struct {
	// Backend is either "command" or "system".
	Backend string `yaml:"backend" json:"backend"`
	// Manager is the executable invoked by the command backend.
	Manager string `yaml:"manager" json:"manager"`
	// Subcommand is passed to Manager before the package name.
	Subcommand string `yaml:"subcommand" json:"subcommand"`
	// AssumeYesFlag suppresses the manager's confirmation prompt.
	AssumeYesFlag string `yaml:"assumeYesFlag" json:"assumeYesFlag"`
	// SystemManager names the syspkg manager (apt, dnf, snap...); empty means auto-detect.
	SystemManager string `yaml:"systemManager" json:"systemManager"`
}

// DefaultConfig mirrors `pip uninstall <name> -y`.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendCommand,
		Manager:       DefaultManager,
		Subcommand:    DefaultSubcommand,
		AssumeYesFlag: DefaultAssumeYesFlag,
	}
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Backend) {
	case BackendCommand, "":
		if strings.TrimSpace(c.Manager) == "" {
			return NewConfigurationError(nil, "manager is required for the command backend")
		}
	case BackendSystem:
	default:
		return NewConfigurationError(nil, "unsupported backend '"+c.Backend+"'")
	}

	return nil
}

// New returns the Remover selected by cfg.
func New(cfg Config, opts ...Option) (Remover, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if strings.ToLower(cfg.Backend) == BackendSystem {
		r, err := NewSystemRemover(cfg.SystemManager, opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	r, err := NewCommandRemover(append([]Option{
		WithManager(cfg.Manager),
		WithSubcommand(cfg.Subcommand),
		WithAssumeYesFlag(cfg.AssumeYesFlag),
	}, opts...)...)
	if err != nil {
		return nil, err
	}
	return r, nil
}
