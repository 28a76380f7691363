// SPDX-License-Identifier: Apache-2.0

package remover

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Runner starts a process, waits for it and returns its exit code.
// An error is returned only when the process could not be run at all.
type Runner func(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, name string, args ...string) (int, error)

// ExecRunner runs the process with os/exec, wiring the given streams straight through.
func ExecRunner(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return ExitCodeNotRun, err
}

// CommandRemover removes packages by running `<manager> <subcommand> <name> <assume-yes-flag>`.
type CommandRemover struct {
	logger        *zerolog.Logger
	manager       string
	subcommand    string
	assumeYesFlag string
	runner        Runner
	stdin         io.Reader
	stdout        io.Writer
	stderr        io.Writer
}

func (r *CommandRemover) Manager() string {
	return r.manager
}

// Args returns the argument vector passed to the manager for the given package.
func (r *CommandRemover) Args(name string) []string {
	var args []string
	if r.subcommand != "" {
		args = append(args, r.subcommand)
	}

	args = append(args, name)

	if r.assumeYesFlag != "" {
		args = append(args, r.assumeYesFlag)
	}

	return args
}

func (r *CommandRemover) Remove(ctx context.Context, name string) Status {
	args := r.Args(name)

	r.logger.Debug().
		Str("manager", r.manager).
		Strs("args", args).
		Msg("Running package manager")

	code, err := r.runner(ctx, r.stdin, r.stdout, r.stderr, r.manager, args...)
	if err != nil {
		return failed(name, ExitCodeNotRun, NewUninstallationError(err, name, r.manager, ExitCodeNotRun))
	}

	if code != 0 {
		return failed(name, code, NewUninstallationError(nil, name, r.manager, code))
	}

	return succeeded(name)
}

func NewCommandRemover(opts ...Option) (*CommandRemover, error) {
	o := &options{
		logger:        nopLogger(),
		manager:       DefaultManager,
		subcommand:    DefaultSubcommand,
		assumeYesFlag: DefaultAssumeYesFlag,
		runner:        ExecRunner,
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}

	for _, opt := range opts {
		opt(o)
	}

	if strings.TrimSpace(o.manager) == "" {
		return nil, NewConfigurationError(nil, "manager is required for the command backend")
	}

	return &CommandRemover{
		logger:        o.logger,
		manager:       o.manager,
		subcommand:    o.subcommand,
		assumeYesFlag: o.assumeYesFlag,
		runner:        o.runner,
		stdin:         o.stdin,
		stdout:        o.stdout,
		stderr:        o.stderr,
	}, nil
}
