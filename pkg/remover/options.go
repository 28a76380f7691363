// SPDX-License-Identifier: Apache-2.0

package remover

import (
	"io"

	"github.com/bluet/syspkg"
	"github.com/rs/zerolog"
)

// options is shared by every backend; each backend reads the fields it needs.
type options struct {
	logger        *zerolog.Logger
	manager       string
	subcommand    string
	assumeYesFlag string
	runner        Runner
	stdin         io.Reader
	stdout        io.Writer
	stderr        io.Writer
	pkgManager    syspkg.PackageManager
}

type Option func(*options)

func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithManager(manager string) Option {
	return func(o *options) {
		o.manager = manager
	}
}

func WithSubcommand(subcommand string) Option {
	return func(o *options) {
		o.subcommand = subcommand
	}
}

func WithAssumeYesFlag(flag string) Option {
	return func(o *options) {
		o.assumeYesFlag = flag
	}
}

// WithRunner replaces the process runner used by the command backend.
func WithRunner(runner Runner) Option {
	return func(o *options) {
		if runner != nil {
			o.runner = runner
		}
	}
}

// WithStreams sets the streams inherited by the child process.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdin = stdin
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithPackageManager injects the syspkg manager used by the system backend.
func WithPackageManager(pm syspkg.PackageManager) Option {
	return func(o *options) {
		if pm != nil {
			o.pkgManager = pm
		}
	}
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
