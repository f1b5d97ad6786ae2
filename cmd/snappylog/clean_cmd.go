// cmd/snappylog/clean_cmd.go

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheScriptGuy/sls-s3-snappy/internal/report"
	"github.com/TheScriptGuy/sls-s3-snappy/pkg/clean"
)

func init() {
	rootCmd.AddCommand(cleanCmd())
}

func cleanCmd() *cobra.Command {
	var inputDir, logFile string
	var assumeYes bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove previously generated *_uncompress.json files",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := report.New(verbose, logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			opts := &clean.Options{
				Dir:     inputDir,
				Logger:  logger,
				Confirm: confirmPrompt(assumeYes),
			}

			result, err := clean.Clean(opts)
			if err != nil {
				return err
			}

			if len(result.Errors) > 0 {
				return fmt.Errorf("finished with %d errors", len(result.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "", "Directory to clean (required)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Delete without asking for confirmation")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every deleted file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write log events to this file instead of stdout")

	_ = cmd.MarkFlagRequired("input-dir")

	return cmd
}

// confirmPrompt builds the interactive y/N confirmation hook. With assumeYes
// the prompt is skipped entirely.
func confirmPrompt(assumeYes bool) func(count int) bool {
	return func(count int) bool {
		if assumeYes {
			return true
		}
		fmt.Printf("Do you want to delete %d files? (y/N): ", count)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		return strings.ToLower(strings.TrimSpace(line)) == "y"
	}
}
