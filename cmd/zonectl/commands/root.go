package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chazu/fieldzone/pkg/config"
	"github.com/chazu/fieldzone/pkg/zone"
)

var (
	file       string
	kernelName string
	app        *App
)

// Execute runs the zonectl root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zonectl",
		Short:         "Query and draw 2-D field zones",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := NewApp(kernelName)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&file, "file", "f", "", "layout file (zone DSL, or .geojson)")
	root.PersistentFlags().StringVar(&kernelName, "kernel", config.GetEnv(config.EnvKernel, "native"), "field kernel: native or sdfx")

	root.AddCommand(
		listCmd(),
		containsCmd(),
		distanceCmd(),
		renderCmd(),
		exportCmd(),
		validateCmd(),
	)
	return root
}

// pointArgs parses two positional arguments as a point.
func pointArgs(args []string) (zone.Point, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return zone.Point{}, fmt.Errorf("bad x %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return zone.Point{}, fmt.Errorf("bad y %q: %w", args[1], err)
	}
	return zone.Pt(x, y), nil
}
