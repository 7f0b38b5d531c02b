package extract

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"meeting-insights/cmd/insights/cmd/common"
	"meeting-insights/internal/app"
	"meeting-insights/internal/app/batch"
	"meeting-insights/internal/app/export"
)

var (
	format     string
	outputDir  string
	forceAudio bool
	sendEmail  bool
	parallel   int
	progress   bool
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "json", "export format: json, csv or xlsx")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory, or - for stdout")
	Cmd.Flags().BoolVarP(&forceAudio, "audio", "a", false, "treat every input as audio regardless of extension")
	Cmd.Flags().BoolVarP(&sendEmail, "email", "e", false, "email each result to the configured recipient")
	Cmd.Flags().IntVarP(&parallel, "parallel", "j", batch.DefaultParallel, "files processed concurrently")
	Cmd.Flags().BoolVar(&progress, "progress", false, "force the progress bar even when stderr is not a terminal")
}

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract insights from transcript or audio files",
	Long: `Extract insights from transcript or audio files

- Text files are read as transcripts, audio files (mp3, wav, m4a, ...) are transcribed first
- Each result is written to the output directory as <name>.<format>
- Use --email to also deliver every result by email`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exportFormat, err := export.ParseFormat(format)
		if err != nil {
			return err
		}

		cfg, logger, err := common.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		pipeline, err := app.InitializePipeline(cfg, logger)
		if err != nil {
			return err
		}

		opts := batch.Options{
			Format:     exportFormat,
			OutputDir:  outputDir,
			ForceAudio: forceAudio,
			Parallel:   parallel,
			Progress: batch.ProgressConfig{
				Enabled: batch.ShouldShowProgress(progress) && outputDir != "-",
				Writer:  cmd.ErrOrStderr(),
			},
		}
		if outputDir == "-" {
			opts.OutputDir = ""
			opts.Stdout = cmd.OutOrStdout()
		}

		var sender batch.Sender
		if sendEmail {
			sender = pipeline.Mailer
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		outcomes, err := batch.NewRunner(pipeline.Extractor, sender, opts, logger).Run(ctx, args)
		if err != nil {
			return err
		}

		failed := lo.Filter(outcomes, func(o batch.Outcome, _ int) bool { return o.Err != nil })
		for _, o := range failed {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", o.Input, o.Err)
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d of %d files failed", len(failed), len(outcomes))
		}
		return nil
	},
}
