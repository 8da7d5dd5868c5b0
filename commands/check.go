package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bidscope/config"
	"bidscope/services"
)

// NewCheckCommand returns "check", which loads every data file and reports
// what the web UI would silently degrade on.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the data files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := services.NewLoader(cfg.Source())
			w := cmd.OutOrStdout()
			problems := 0

			bd, err := loader.LoadBidData(cmd.Context())
			if err != nil {
				fmt.Fprintf(w, "data.json: %v\n", err)
				problems++
			} else {
				for _, m := range services.ValidateRefCounts(bd) {
					fmt.Fprintf(w, "data.json: %s\n", m)
					problems++
				}
			}

			grps := loader.LoadGRPS(cmd.Context())
			for _, d := range services.Disciplines() {
				if err, ok := grps.Errors[d]; ok {
					fmt.Fprintf(w, "%s GRPS: %v\n", d.Title(), err)
					problems++
				}
			}

			if _, err := loader.LoadPackageMappings(cmd.Context()); err != nil {
				fmt.Fprintf(w, "package mappings: %v\n", err)
				problems++
			}

			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			fmt.Fprintln(w, "All data files OK")
			return nil
		},
	}
}
