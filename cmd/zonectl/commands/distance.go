package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func distanceCmd() *cobra.Command {
	var nearest bool

	cmd := &cobra.Command{
		Use:   "distance <x> <y>",
		Short: "Print each zone's distance to a point",
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

			out := cmd.OutOrStdout()
			if nearest {
				name, d, ok := l.Nearest(p)
				if !ok {
					return fmt.Errorf("layout has no zones")
				}
				fmt.Fprintf(out, "%s %g\n", name, d)
				return nil
			}
			for _, name := range l.Names() {
				fmt.Fprintf(out, "%-12s %g\n", name, l.Lookup(name).DistanceToPoint(p))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&nearest, "nearest", false, "print only the closest zone")
	return cmd
}
