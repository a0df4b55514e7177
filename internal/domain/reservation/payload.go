package reservation

import "time"

const (
	FormCategory = "Reservation"

	DefaultSpace = "Indoors"
)

// Builder turns raw input into a Payload. Space and TextingPermission
// come from config; the zero Builder uses DefaultSpace and no texting.
type Builder struct {
	Space             string
	TextingPermission bool
}

// Resolve finds the next occurrence of the requested day and time.
func (b Builder) Resolve(today time.Time, in RawInput) (Occurrence, error) {
	at, err := NextOccurrence(today, in.Day, in.Time)
	if err != nil {
		return Occurrence{}, err
	}
	return Occurrence{At: at, NextDay: IsTomorrow(today, at)}, nil
}

// Build validates in and assembles the payload. Checks run name, email,
// day/time, guests, phone; the first failure is returned as is.
func (b Builder) Build(today time.Time, in RawInput) (Payload, error) {
	first, last, err := SplitName(in.Name)
	if err != nil {
		return Payload{}, err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return Payload{}, err
	}
	occ, err := b.Resolve(today, in)
	if err != nil {
		return Payload{}, err
	}
	if err := ValidateGuests(in.Guests); err != nil {
		return Payload{}, err
	}
	phone, err := NormalizePhone(in.Phone)
	if err != nil {
		return Payload{}, err
	}
	c := Contact{FirstName: first, LastName: last, Email: in.Email, Phone: phone}

	space := b.Space
	if space == "" {
		space = DefaultSpace
	}
	var instructions *string
	if in.Instructions != nil {
		s := *in.Instructions
		instructions = &s
	}

	return Payload{
		FormCategory: FormCategory,
		FormFields: FormFields{
			NumberOfGuests: in.Guests,
			FirstName:      c.FirstName,
			LastName:       c.LastName,
			Email:          c.Email,
			Phone:          c.Phone,
			Year:           occ.At.Year(),
			Month:          int(occ.At.Month()),
			Date:           occ.At.Day(),
			Time: TimeField{
				Time:    occ.At.Format(ClockLayout),
				NextDay: occ.NextDay,
			},
			Space:             space,
			Instructions:      instructions,
			TextingPermission: b.TextingPermission,
		},
	}, nil
}
