// cmd/snappylog/decode_cmd.go

package main

import (
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/TheScriptGuy/sls-s3-snappy/internal/report"
	"github.com/TheScriptGuy/sls-s3-snappy/pkg/decode"
)

func init() {
	rootCmd.AddCommand(decodeCmd())
}

func decodeCmd() *cobra.Command {
	var inputPath, inputDir, logFile string
	var exclude []string
	var workers int
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode snappy-framed log files into plain JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Prepare options
			opts := &decode.Options{
				InputPath: inputPath,
				InputDir:  inputDir,
				Workers:   workers,
				Exclude:   exclude,
				Verbose:   verbose,
				Quiet:     quiet,
			}

			// Validate and set defaults
			if err := opts.Validate(); err != nil {
				return err
			}

			logger, closeLog, err := report.New(opts.Verbose, logFile)
			if err != nil {
				return err
			}
			defer closeLog()
			opts.Logger = logger

			// Progress bars only when nothing else is writing to the console
			var progressCb decode.ProgressCallback
			var progress *mpb.Progress

			if !quiet && !verbose && logFile != "" {
				progressCb, progress = decode.ProgressBarCallback()
			}

			// Per-file problems are warnings inside the batch; only a bad
			// root path comes back as an error here.
			_, err = decode.Decode(opts, progressCb)

			// Wait for the progress bar to finish rendering
			if progress != nil {
				progress.Wait()
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Single input file to decode")
	cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "", "Directory to search for compressed log files")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of concurrent workers (default: CPU count)")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "e", nil, "Gitignore-style patterns to skip while scanning (repeatable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every decoded file")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write log events to this file instead of stdout")

	return cmd
}
