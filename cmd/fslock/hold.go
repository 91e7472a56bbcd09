package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunoczim/fslock"
)

func newHoldCmd() *cobra.Command {
	var withPID bool

	cmd := &cobra.Command{
		Use:   "hold <path>",
		Short: "Acquire the lock, blocking if needed, and hold it until stdin closes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lf, err := fslock.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening lock file %s: %w", args[0], err)
			}
			defer lf.Close()

			if withPID {
				err = lf.LockWithPID()
			} else {
				err = lf.Lock()
			}
			if err != nil {
				return fmt.Errorf("acquiring lock on %s: %w", args[0], err)
			}

			logger.Info().Str("path", args[0]).Int("pid", os.Getpid()).
				Msg("lock acquired, holding until stdin closes")
			_, _ = io.Copy(io.Discard, os.Stdin)

			logger.Info().Str("path", args[0]).Msg("releasing lock")
			return lf.Unlock()
		},
	}

	cmd.Flags().BoolVar(&withPID, "pid", false, "stamp the process id into the file while holding")
	return cmd
}
