// Command fslock exercises advisory file locks from the shell: try a lock
// without blocking, hold one until stdin closes, or write content under one.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger zerolog.Logger

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	root := &cobra.Command{
		Use:           "fslock",
		Short:         "Advisory exclusive file locking from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTryCmd(), newHoldCmd(), newWriteCmd())

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
