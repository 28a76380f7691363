// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-purge/cmd/purge/commands/list"
	"github.com/hashgraph/solo-purge/cmd/purge/commands/version"
	"github.com/hashgraph/solo-purge/internal/config"
	"github.com/hashgraph/solo-purge/internal/packages"
	"github.com/hashgraph/solo-purge/internal/uninstall"
	"github.com/hashgraph/solo-purge/pkg/exit"
	"github.com/hashgraph/solo-purge/pkg/remover"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

// examples:
// ./purge
// ./purge --config ./purge.yaml
// ./purge list -o json

// RemoverFactory builds the Remover used by the root command.
type RemoverFactory func(cfg remover.Config) (remover.Remover, error)

func defaultRemoverFactory(cfg remover.Config) (remover.Remover, error) {
	return remover.New(cfg, remover.WithLogger(logx.As()))
}

// NewRootCmd returns the purge command bound to the given package list.
// The resulting exit code is written to code once the command has run.
func NewRootCmd(pkgs packages.PackageList, factory RemoverFactory, code *exit.Code) *cobra.Command {
	var (
		flagConfig       string
		flagVersion      bool
		flagOutputFormat string
	)

	if factory == nil {
		factory = defaultRemoverFactory
	}

	rootCmd := &cobra.Command{
		Use:           "purge",
		Short:         "Remove a fixed set of packages without prompting",
		Long:          "Solo Purge - Removes every package of a built-in list, one at a time, continuing past failures",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Initialize(flagConfig); err != nil {
				return err
			}

			if err := logx.Initialize(config.Get().Log); err != nil {
				return errorx.IllegalFormat.Wrap(err, "failed to initialize logging")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVersion {
				version.PrintVersion(cmd, flagOutputFormat)
				return nil
			}

			r, err := factory(config.Get().Remover)
			if err != nil {
				return err
			}

			u, err := uninstall.New(r, uninstall.WithLogger(logx.As()))
			if err != nil {
				return err
			}

			report := u.Run(cmd.Context(), pkgs)
			if code != nil {
				*code = report.ExitCode()
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path")

	// support '--version', '-v' to show version information
	rootCmd.Flags().BoolVarP(&flagVersion, "version", "v", false, "Show version")
	rootCmd.Flags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format (yaml|json)")

	rootCmd.AddCommand(list.NewCmd(pkgs))
	rootCmd.AddCommand(version.GetCmd())

	return rootCmd
}

// Execute runs purge over list and returns the exit code the process should terminate with.
func Execute(ctx context.Context, pkgs packages.PackageList) (exit.Code, error) {
	if ctx == nil {
		return exit.UsageError, errorx.IllegalArgument.New("context is required")
	}

	code := exit.NormalTermination
	rootCmd := NewRootCmd(pkgs, nil, &code)

	_, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		if errorx.Cast(err) != nil {
			return exit.GeneralError, err
		}
		return exit.GeneralError, errorx.IllegalState.Wrap(err, "failed to execute command")
	}

	return code, nil
}
