package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/fieldzone/pkg/layout"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a layout for malformed zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.Load(file)
			if err != nil {
				return err
			}

			res := layout.ValidateAll(l)
			out := cmd.OutOrStdout()
			for _, e := range res.Errors {
				fmt.Fprintln(out, e)
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(out, w)
			}
			if !res.OK() {
				return fmt.Errorf("%d error(s) in %s", len(res.Errors), file)
			}
			fmt.Fprintf(out, "ok: %d zone(s), %d warning(s)\n", l.Count(), len(res.Warnings))
			return nil
		},
	}
}
