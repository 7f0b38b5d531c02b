package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meeting-insights/cmd/insights/cmd/common"
	"meeting-insights/cmd/insights/cmd/extract"
	"meeting-insights/cmd/insights/cmd/serve"
	"meeting-insights/cmd/insights/cmd/version"
	"meeting-insights/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "insights",
	Short: "Extract summaries, objections and action items from meeting transcripts",
	Long: `Extract summaries, objections and action items from meeting transcripts or recordings.
- Paste a transcript or upload audio through the HTTP API (insights serve)
- Or process files from the command line (insights extract)
- Results can be exported as JSON, CSV or XLSX and sent by email.`,
	SilenceUsage:     true,
	TraverseChildren: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.LoadEnv()
		if err != nil {
			return err
		}
		if path != "" && common.Verbose {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", path)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(extract.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&common.ConfigFile, "config", "c", config.DefaultConfigPath, "config file")
	rootCmd.PersistentFlags().BoolVarP(&common.Verbose, "verbose", "V", false, "verbose output")
}
