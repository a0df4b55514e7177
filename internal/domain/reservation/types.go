package reservation

import "time"

// RawInput is what the user typed, before any validation.
type RawInput struct {
	Name   string
	Email  string
	Phone  string
	Guests int

	// Day is a weekday name, Time a 12-hour clock ("7:00 PM").
	Day  string
	Time string

	// Instructions is nil when none were given.
	Instructions *string
}

type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string // (XXX) XXX-XXXX
}

// Occurrence is the resolved reservation date and time.
type Occurrence struct {
	At      time.Time
	NextDay bool
}

// Payload is the document posted to the booking form endpoint.
type Payload struct {
	FormCategory string     `json:"form_category"`
	FormFields   FormFields `json:"form_fields"`
}

type FormFields struct {
	NumberOfGuests    int       `json:"number_of_guests"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Year              int       `json:"year"`
	Month             int       `json:"month"`
	Date              int       `json:"date"`
	Time              TimeField `json:"time"`
	Space             string    `json:"space"`
	Instructions      *string   `json:"instructions"`
	TextingPermission bool      `json:"texting_permission"`
}

type TimeField struct {
	Time    string `json:"time"`
	NextDay bool   `json:"next_day"`
}
