package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "snappylog",
	Short:   "snappylog - concurrent decoder for snappy-framed JSON log files",
	Long:    "snappylog decodes log files that carry a one-line JSON header followed by a Snappy-compressed payload.",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd())
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("snappylog %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
