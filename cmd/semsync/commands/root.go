// Package commands wires up the semsync CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "semsync",
	Short:         "Demonstrations of classic semaphore synchronization problems",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every put/get/step")
	rootCmd.AddCommand(newBufferCmd())
	rootCmd.AddCommand(newRendezvousCmd())
	rootCmd.AddCommand(newBenchCmd())
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := os.Stderr
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(w.Fd()),
	}))
}
