package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/fieldzone/pkg/config"
	"github.com/chazu/fieldzone/pkg/raster"
)

func renderCmd() *cobra.Command {
	var (
		cols, rows int
		margin     float64
	)

	cmd := &cobra.Command{
		Use:   "render [name]",
		Short: "Draw a zone, or every zone, as a character grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.LoadValid(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				grids, err := raster.RasterizeLayout(l, app.kernel, cols, rows, margin)
				if err != nil {
					return err
				}
				for _, g := range grids {
					fmt.Fprintf(out, "%s\n%s\n", g.Name, g)
				}
				return nil
			}

			z := l.Lookup(args[0])
			if z == nil {
				return fmt.Errorf("no zone named %q", args[0])
			}
			f, err := app.kernel.Compile(z)
			if err != nil {
				return fmt.Errorf("compile %q with %s: %w", args[0], app.kernel.Name(), err)
			}
			g, err := raster.RasterizeIn(f, f.Bounds().ExpandedByMargin(margin), cols, rows)
			if err != nil {
				return err
			}
			fmt.Fprint(out, g)
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", config.GetEnvInt(config.EnvCols, 40), "grid columns")
	cmd.Flags().IntVar(&rows, "rows", config.GetEnvInt(config.EnvRows, 20), "grid rows")
	cmd.Flags().Float64Var(&margin, "margin", config.GetEnvFloat(config.EnvMargin, 0.5), "space around the zone bounds")
	return cmd
}
