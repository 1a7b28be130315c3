package cmd

import (
	"fmt"
	"os"

	"record-merger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir holds config.yaml and .env for every subcommand.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "record-merger",
	Short: "Record Merger Service",
	Long: `Record Merger matches records from two collections by weighted evidence,
reports field-level conflicts and merges values from a source into a destination.
It reconciles a supplier product feed in object storage against the products table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		reportFailure(err)
		os.Exit(1)
	}
}

// reportFailure logs err on the console; the configured logger may be the
// very thing that failed to load.
func reportFailure(err error) {
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding config.yaml and .env")
}
