package reservation

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxGuests is the largest party the booking form takes without a phone call.
const MaxGuests = 10

// SplitName splits a full name on its first whitespace run.
// A single-token name yields an empty last name; a name starting with
// whitespace has an empty first token and is rejected.
func SplitName(name string) (first, last string, err error) {
	if strings.TrimSpace(name) == "" {
		return "", "", inputErr(ErrInvalidName, name)
	}
	i := strings.IndexFunc(name, unicode.IsSpace)
	switch {
	case i < 0:
		return name, "", nil
	case i == 0:
		return "", "", inputErr(ErrInvalidName, name)
	}
	return name[:i], strings.TrimSpace(name[i:]), nil
}

// ValidateEmail only checks structure: local@label.label.
func ValidateEmail(email string) error {
	if email == "" {
		return inputErr(ErrEmailRequired, "")
	}
	_, domain, ok := strings.Cut(email, "@")
	if !ok {
		return inputErr(ErrEmailMissingAt, email)
	}
	host, tld, ok := strings.Cut(domain, ".")
	if !ok {
		return inputErr(ErrDomainMissingDot, email)
	}
	if host == "" || tld == "" {
		return inputErr(ErrInvalidDomain, domain)
	}
	return nil
}

// NormalizePhone drops everything but digits and formats a 10-digit
// number as "(AAA) BBB-CCCC".
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return "", inputErr(ErrInvalidPhoneLength, phone)
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:], nil
}

func ValidateGuests(n int) error {
	if n < 1 {
		return inputErr(ErrGuestsRequired, strconv.Itoa(n))
	}
	if n > MaxGuests {
		return inputErr(ErrTooManyGuests, strconv.Itoa(n))
	}
	return nil
}
