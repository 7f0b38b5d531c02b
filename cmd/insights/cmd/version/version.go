package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"meeting-insights/internal/app/llm"
)

var version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of meeting-insights",
	Long:  `All software has versions. This is meeting-insights's.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printVersion(cmd)
		return nil
	},
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), version)
	fmt.Fprintf(cmd.OutOrStdout(), "providers: %v\n", llm.Registered())
}
