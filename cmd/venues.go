package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVenuesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "List known venues and their SpotHopper spot ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range a.cfg.Venues.List() {
				def := ""
				if v.IsNamed(a.cfg.Venue) {
					def = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tspot=%d%s\n", v.Name, v.SpotID, def)
			}
			return nil
		},
	}
}
