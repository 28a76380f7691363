// SPDX-License-Identifier: Apache-2.0

package remover

import (
	"context"
)

//go:generate mockgen -source=remover.go -destination=mock_remover.go -package=remover

// Remover removes a single package from the environment it manages.
//
// Remove never panics on a failed removal; the outcome is reported through the returned Status.
type Remover interface {
	Remove(ctx context.Context, name string) Status
}

// ExitCodeNotRun is reported when the removal process could not be started.
const ExitCodeNotRun = -1

// Status is the outcome of a single removal call.
type Status struct {
	Name     string `yaml:"name" json:"name"`
	ExitCode int    `yaml:"exitCode" json:"exitCode"`
	Err      error  `yaml:"-" json:"-"`
}

// Ok returns true if the removal call succeeded.
func (s Status) Ok() bool {
	return s.Err == nil && s.ExitCode == 0
}

func succeeded(name string) Status {
	return Status{Name: name, ExitCode: 0}
}

func failed(name string, exitCode int, err error) Status {
	return Status{Name: name, ExitCode: exitCode, Err: err}
}
