// SPDX-License-Identifier: Apache-2.0

// Package uninstall removes a list of packages one after another.
package uninstall

import (
	"context"
	"strings"

	"github.com/hashgraph/solo-purge/internal/packages"
	"github.com/hashgraph/solo-purge/pkg/remover"
	"github.com/joomcode/errorx"
	"github.com/rs/zerolog"
)

// Uninstaller walks a PackageList in order and asks its Remover to remove each entry.
//
// Entries are processed sequentially. A failed removal is recorded in the Report and the
// next entry is processed regardless.
type Uninstaller struct {
	logger  *zerolog.Logger
	remover remover.Remover
}

type Option func(*Uninstaller)

func WithLogger(logger *zerolog.Logger) Option {
	return func(u *Uninstaller) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// Run removes every entry of list in order and returns the collected statuses.
func (u *Uninstaller) Run(ctx context.Context, list packages.PackageList) *Report {
	report := newReport(list.Len())

	for i, entry := range list.Names() {
		name := strings.TrimSpace(entry)

		status := u.remover.Remove(ctx, name)
		report.add(status)

		if status.Ok() {
			u.logger.Debug().
				Int("index", i).
				Str("package", name).
				Msg("Package removed")
			continue
		}

		u.logger.Debug().
			Int("index", i).
			Str("package", name).
			Int("exit_code", status.ExitCode).
			Err(status.Err).
			Msg("Package removal failed, continuing")
	}

	u.logger.Debug().
		Int("attempted", report.Attempted()).
		Int("failed", len(report.Failed())).
		Msg("Finished removing packages")

	return report
}

func New(r remover.Remover, opts ...Option) (*Uninstaller, error) {
	if r == nil {
		return nil, errorx.IllegalArgument.New("remover is required")
	}

	u := &Uninstaller{
		logger:  nopLogger(),
		remover: r,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u, nil
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
