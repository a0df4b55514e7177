package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/spothopper-reserve/internal/application/usecases"
	"github.com/example/spothopper-reserve/internal/domain/reservation"
	"github.com/example/spothopper-reserve/internal/infrastructure/spothopper"
)

func newRequestCmd(a *app) *cobra.Command {
	var (
		in           reservation.RawInput
		instructions string
		venue        string
		dryRun       bool
	)

	c := &cobra.Command{
		Use:   "request",
		Short: "Request a reservation for the next matching day and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("instructions") {
				in.Instructions = &instructions
			}
			if venue == "" {
				venue = a.cfg.Venue
			}

			uc := usecases.RequestReservation{
				Builder: reservation.Builder{
					Space:             a.cfg.Space,
					TextingPermission: a.cfg.TextingPermission,
				},
				Provider: spothopper.New(a.cfg, a.log),
				Venues:   a.cfg.Venues,
				Log:      a.log,
			}

			if dryRun {
				v, p, err := uc.Prepare(venue, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "POST %s\n", spothopper.RequestURL(a.cfg.BaseURL, v.SpotID))
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if _, err := uc.Execute(ctx, venue, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Successfully made reservation!")
			return nil
		},
	}

	c.Flags().StringVarP(&in.Name, "name", "n", "", "full name for the reservation")
	c.Flags().IntVarP(&in.Guests, "guests", "g", 2, fmt.Sprintf("number of guests (1-%d)", reservation.MaxGuests))
	c.Flags().StringVarP(&in.Email, "email", "e", "", "contact email")
	c.Flags().StringVarP(&in.Phone, "phone", "p", "", "contact phone (10 digits, any punctuation)")
	c.Flags().StringVarP(&in.Day, "day", "d", "Friday", "day of the week")
	c.Flags().StringVarP(&in.Time, "time", "t", "7:00 PM", "time of day (12-hour, e.g. 7:30pm)")
	c.Flags().StringVarP(&instructions, "instructions", "i", "", "special instructions")
	c.Flags().StringVar(&venue, "venue", "", "venue name (default from config)")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "print the request instead of sending it")

	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("phone")
	return c
}
