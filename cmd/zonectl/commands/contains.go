package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <x> <y>",
		Short: "Print the zones that contain a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pointArgs(args)
			if err != nil {
				return err
			}
			l, err := app.LoadValid(file)
			if err != nil {
				return err
			}

			names := l.ContainingZones(p)
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(none)")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
