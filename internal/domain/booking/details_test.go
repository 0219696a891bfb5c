package booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetails_Variants(t *testing.T) {
	tests := []struct {
		name        string
		bookingType string
		raw         string
		wantKind    DetailsKind
	}{
		{"flight object", "flight", `{"origin":"LHR","destination":"JFK"}`, DetailsFlight},
		{"flight upper case type", "FLIGHT", `{"origin":"LHR"}`, DetailsFlight},
		{"hotel object", "Hotel", `{"hotel_name":"Ritz","guests":2}`, DetailsHotel},
		{"other type object", "car", `{"model":"Civic"}`, DetailsDocument},
		{"array document", "tour", `[1,2,3]`, DetailsDocument},
		{"plain string", "flight", `"window seat please"`, DetailsText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDetails(tt.bookingType, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, d.Kind())
			assert.JSONEq(t, tt.raw, string(d.Raw()))
		})
	}
}

func TestParseDetails_Rejects(t *testing.T) {
	_, err := ParseDetails("flight", nil)
	assert.ErrorIs(t, err, ErrDetailsRequired)

	for _, falsy := range []string{" null ", `""`, `false`, `0`, `0.0`} {
		_, err = ParseDetails("flight", json.RawMessage(falsy))
		assert.ErrorIs(t, err, ErrDetailsRequired, falsy)
	}

	_, err = ParseDetails("tour", json.RawMessage(`true`))
	assert.NoError(t, err)

	_, err = ParseDetails("flight", json.RawMessage(`{"origin":`))
	assert.ErrorIs(t, err, ErrDetailsInvalid)
}

func TestParseDetails_KeepsCallerDocument(t *testing.T) {
	raw := `{"origin":"LHR","passport":"X123","extra":{"meal":"veg","seats":[1,2]}}`

	d, err := ParseDetails("flight", json.RawMessage(raw))
	require.NoError(t, err)

	flight, ok := d.(FlightDetails)
	require.True(t, ok)
	assert.Equal(t, "LHR", flight.Origin)
	assert.Equal(t, "X123", flight.Passport)
	assert.Equal(t, raw, string(d.Raw()))
}

func TestVisaProfileOf(t *testing.T) {
	unknownProfile := VisaProfile{Passport: "UNKNOWN", Country: "UNKNOWN", BankBalance: float64(0), CriminalHistory: false}

	t.Run("fields present", func(t *testing.T) {
		d, err := ParseDetails("flight", json.RawMessage(
			`{"passport":"P99","nationality":"IN","bankBalance":2500.5,"criminalHistory":true}`))
		require.NoError(t, err)

		assert.Equal(t, VisaProfile{Passport: "P99", Country: "IN", BankBalance: 2500.5, CriminalHistory: true}, VisaProfileOf(d))
	})

	t.Run("defaults for absent or empty fields", func(t *testing.T) {
		d, err := ParseDetails("flight", json.RawMessage(`{"passport":"","bankBalance":0,"criminalHistory":null}`))
		require.NoError(t, err)

		assert.Equal(t, unknownProfile, VisaProfileOf(d))
	})

	t.Run("other values pass through", func(t *testing.T) {
		d, err := ParseDetails("flight", json.RawMessage(`{"bankBalance":"5000","criminalHistory":"yes"}`))
		require.NoError(t, err)

		profile := VisaProfileOf(d)
		assert.Equal(t, "5000", profile.BankBalance)
		assert.Equal(t, "yes", profile.CriminalHistory)
	})

	t.Run("non flight details", func(t *testing.T) {
		d, err := ParseDetails("flight", json.RawMessage(`"see attachment"`))
		require.NoError(t, err)

		assert.Equal(t, unknownProfile, VisaProfileOf(d))
	})
}
