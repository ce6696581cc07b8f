package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/fieldzone/pkg/zone"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the zones in a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.LoadValid(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range l.Names() {
				z := l.Lookup(name)
				p := z.Position()
				b := z.Bounds()
				fmt.Fprintf(out, "%-12s %-9s at (%g, %g)  bounds [%g, %g]-[%g, %g]\n",
					name, kindOf(z), p.X, p.Y, b.X.Lo, b.Y.Lo, b.X.Hi, b.Y.Hi)
			}
			return nil
		},
	}
}

func kindOf(z zone.Zone) string {
	switch z := z.(type) {
	case *zone.Circle:
		return "circle"
	case *zone.Polygon:
		return "polygon"
	case *zone.Composite:
		return fmt.Sprintf("union/%d", len(z.Members()))
	}
	return "unknown"
}
