// SPDX-License-Identifier: Apache-2.0

package version

import (
	"github.com/hashgraph/solo-purge/internal/doctor"
	"github.com/hashgraph/solo-purge/internal/version"
	"github.com/spf13/cobra"
)

func GetCmd() *cobra.Command {
	var flagOutputFormat string

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Long:  "Show the current version of the application",
		Run: func(cmd *cobra.Command, args []string) {
			PrintVersion(cmd, flagOutputFormat)
		},
	}

	versionCmd.Flags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format: yaml|json")

	return versionCmd
}

func PrintVersion(cmd *cobra.Command, format string) {
	output, err := version.Get().Format(format)
	if err != nil {
		doctor.CheckErr(cmd.Context(), err)
	}
	cmd.Println(output)
}
