package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/spothopper-reserve/internal/domain/reservation"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"Jane Smith", "Jane", "Smith"},
		{"Richard", "Richard", ""},
		{"Richard ", "Richard", ""},
		{"Jane   Smith ", "Jane", "Smith"},
		{"Mary Ann Smith", "Mary", "Ann Smith"},
		{"Jane\tSmith", "Jane", "Smith"},
	}
	for _, tc := range cases {
		first, last, err := reservation.SplitName(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.first, first, tc.in)
		assert.Equal(t, tc.last, last, tc.in)
	}
}

func TestSplitName_invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "\t", " Jane", "\tJane Smith"} {
		_, _, err := reservation.SplitName(in)
		require.ErrorIs(t, err, reservation.ErrInvalidName, "%q", in)
	}
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, reservation.ValidateEmail("janesmith@provider.net"))
	require.NoError(t, reservation.ValidateEmail("janesmith+email@provider.net"))
	require.NoError(t, reservation.ValidateEmail("jane@mail.provider.co.uk"))

	cases := []struct {
		in   string
		want error
	}{
		{"", reservation.ErrEmailRequired},
		{"janesmith.provider.net", reservation.ErrEmailMissingAt},
		{"janesmith+email@provider", reservation.ErrDomainMissingDot},
		{"janesmith+email@provider.", reservation.ErrInvalidDomain},
		{"janesmith+email@.net", reservation.ErrInvalidDomain},
	}
	for _, tc := range cases {
		err := reservation.ValidateEmail(tc.in)
		require.ErrorIs(t, err, tc.want, "%q", tc.in)
	}
}

func TestValidateEmail_errorCarriesInput(t *testing.T) {
	err := reservation.ValidateEmail("janesmith+email@provider")

	var ie *reservation.InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "janesmith+email@provider", ie.Value)
	assert.Contains(t, err.Error(), "janesmith+email@provider")
}

func TestNormalizePhone(t *testing.T) {
	for _, in := range []string{
		"800-867-5309",
		"8008675309",
		"800 867 5309",
		"800.867.5309",
		"(800) 867-5309",
	} {
		got, err := reservation.NormalizePhone(in)
		require.NoError(t, err, in)
		assert.Equal(t, "(800) 867-5309", got, in)
	}
}

func TestNormalizePhone_wrongLength(t *testing.T) {
	for _, in := range []string{
		"",
		"800867530",
		"80086753099",
		"8008675309 ext 3203",
		"+1 800 867 5309",
	} {
		_, err := reservation.NormalizePhone(in)
		require.ErrorIs(t, err, reservation.ErrInvalidPhoneLength, "%q", in)
	}
}

func TestValidateGuests(t *testing.T) {
	require.NoError(t, reservation.ValidateGuests(1))
	require.NoError(t, reservation.ValidateGuests(reservation.MaxGuests))

	require.ErrorIs(t, reservation.ValidateGuests(0), reservation.ErrGuestsRequired)
	require.ErrorIs(t, reservation.ValidateGuests(-3), reservation.ErrGuestsRequired)
	require.ErrorIs(t, reservation.ValidateGuests(11), reservation.ErrTooManyGuests)
}
