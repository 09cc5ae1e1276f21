package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console <instance-id>",
	Short: "Print an instance's console output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, _, err := connect(ctx)
		if err != nil {
			return err
		}
		out, err := svc.GetConsoleOutput(ctx, args[0])
		if err != nil {
			return fmt.Errorf("console output for %s: %w", args[0], err)
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	},
}
