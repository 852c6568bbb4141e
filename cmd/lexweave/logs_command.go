package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lexweave/internal/logging"
	"lexweave/internal/logtail"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var follow bool
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display pipeline logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := logging.LogFilePath(cfg)
			if path == "" {
				return errors.New("file logging is disabled (no log_dir configured)")
			}

			out := cmd.OutOrStdout()
			var result logtail.Result
			if lines == 0 {
				result, err = logtail.ReadFrom(path, 0)
			} else {
				result, err = logtail.Last(path, lines)
			}
			if err != nil {
				return err
			}
			for _, line := range result.Lines {
				fmt.Fprintln(out, line)
			}

			if !follow {
				if len(result.Lines) == 0 {
					fmt.Fprintln(out, "No log entries available")
				}
				return nil
			}
			return logtail.Follow(cmd.Context(), path, result.Offset, 0, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output")
	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to show (0 for all)")
	return cmd
}
