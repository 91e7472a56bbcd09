package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brunoczim/fslock"
)

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path> <text>",
		Short: "Write text into the file while holding its lock",
		Long: "Acquires the lock with truncation-on-unlock disabled, writes the given text\n" +
			"into the file through the locked handle, and releases the lock, leaving the\n" +
			"content in place.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, text := args[0], args[1]

			lf, err := fslock.Open(path, fslock.PreserveContent())
			if err != nil {
				return fmt.Errorf("opening lock file %s: %w", path, err)
			}
			defer lf.Close()

			if err := lf.Lock(); err != nil {
				return fmt.Errorf("acquiring lock on %s: %w", path, err)
			}
			if err := lf.WriteContent([]byte(text)); err != nil {
				return fmt.Errorf("writing to %s: %w", path, err)
			}

			logger.Info().Str("path", path).Int("bytes", len(text)).Msg("content written under lock")
			return lf.Unlock()
		},
	}
}
