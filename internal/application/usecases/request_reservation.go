package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/spothopper-reserve/internal/domain/reservation"
)

// RequestReservation builds a reservation payload from raw input and
// hands it to the provider.
type RequestReservation struct {
	Builder  reservation.Builder
	Provider reservation.Submitter
	Venues   reservation.Venues
	Log      *zap.Logger

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Prepare validates in and resolves the venue without sending anything.
func (u RequestReservation) Prepare(venueName string, in reservation.RawInput) (reservation.Venue, reservation.Payload, error) {
	venue, err := u.Venues.Lookup(venueName)
	if err != nil {
		return reservation.Venue{}, reservation.Payload{}, err
	}
	now := time.Now
	if u.Now != nil {
		now = u.Now
	}
	p, err := u.Builder.Build(now(), in)
	if err != nil {
		return reservation.Venue{}, reservation.Payload{}, err
	}
	return venue, p, nil
}

func (u RequestReservation) Execute(ctx context.Context, venueName string, in reservation.RawInput) (reservation.Payload, error) {
	if u.Provider == nil {
		return reservation.Payload{}, fmt.Errorf("provider is nil")
	}
	log := u.Log
	if log == nil {
		log = zap.NewNop()
	}

	venue, p, err := u.Prepare(venueName, in)
	if err != nil {
		return reservation.Payload{}, err
	}
	f := p.FormFields
	log.Info("requesting reservation",
		zap.String("provider", u.Provider.Name()),
		zap.String("venue", venue.Name),
		zap.Int("guests", f.NumberOfGuests),
		zap.String("date", fmt.Sprintf("%04d-%02d-%02d", f.Year, f.Month, f.Date)),
		zap.String("time", f.Time.Time),
		zap.Bool("next_day", f.Time.NextDay),
	)
	if err := u.Provider.Submit(ctx, venue, p); err != nil {
		return reservation.Payload{}, fmt.Errorf("failed to make reservation: %w", err)
	}
	return p, nil
}
