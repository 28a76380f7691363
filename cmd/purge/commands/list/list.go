// SPDX-License-Identifier: Apache-2.0

package list

import (
	"fmt"
	"strings"

	"github.com/hashgraph/solo-purge/internal/format"
	"github.com/hashgraph/solo-purge/internal/packages"
	"github.com/spf13/cobra"
)

type listing struct {
	Count    int      `yaml:"count" json:"count"`
	Packages []string `yaml:"packages" json:"packages"`
}

// NewCmd returns a command that prints pkgs, trimmed, without removing anything.
func NewCmd(pkgs packages.PackageList) *cobra.Command {
	var flagOutputFormat string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the packages that would be removed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := pkgs.Trimmed()
			if strings.EqualFold(flagOutputFormat, format.Shell) {
				_, err := fmt.Fprint(cmd.OutOrStdout(), format.ShellWords(names))
				return err
			}

			output, err := format.Marshal(listing{Count: len(names), Packages: names}, flagOutputFormat)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	listCmd.Flags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format: yaml|json|shell")

	return listCmd
}
