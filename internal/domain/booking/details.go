package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// DetailsKind tags the variant held by a Details value.
type DetailsKind string

const (
	DetailsFlight   DetailsKind = "flight"
	DetailsHotel    DetailsKind = "hotel"
	DetailsDocument DetailsKind = "document"
	DetailsText     DetailsKind = "text"
)

const (
	TypeFlight = "flight"
	TypeHotel  = "hotel"
)

var (
	ErrDetailsRequired = errors.New("details are required")
	ErrDetailsInvalid  = errors.New("details must be valid JSON")
)

// Details is the type specific payload of a booking. Every variant keeps the
// document exactly as the caller sent it so that it is returned unchanged.
type Details interface {
	Kind() DetailsKind
	Raw() json.RawMessage
	isDetails()
}

type rawDocument struct {
	raw json.RawMessage
}

func (d rawDocument) Raw() json.RawMessage {
	out := make(json.RawMessage, len(d.raw))
	copy(out, d.raw)
	return out
}

func (rawDocument) isDetails() {}

// FlightDetails carries the itinerary and the traveller's visa profile.
type FlightDetails struct {
	rawDocument
	Origin          string
	Destination     string
	Airline         string
	FlightNumber    string
	Passport        string
	Nationality     string
	// BankBalance and CriminalHistory hold the decoded JSON values as sent;
	// the visa service interprets them.
	BankBalance     any
	CriminalHistory any
}

func (FlightDetails) Kind() DetailsKind { return DetailsFlight }

type HotelDetails struct {
	rawDocument
	HotelName string
	Address   string
	RoomType  string
	Guests    int
}

func (HotelDetails) Kind() DetailsKind { return DetailsHotel }

// DocumentDetails holds any other structured document.
type DocumentDetails struct {
	rawDocument
	Value any
}

func (DocumentDetails) Kind() DetailsKind { return DetailsDocument }

// TextDetails is the fallback for bookings whose details are a plain string.
type TextDetails struct {
	rawDocument
	Text string
}

func (TextDetails) Kind() DetailsKind { return DetailsText }

// ParseDetails decodes raw into the variant matching bookingType. Details
// that decode to null, false, 0 or "" count as missing. Objects for flight and
// hotel bookings are read leniently: fields of the wrong JSON type are treated
// as absent.
func ParseDetails(bookingType string, raw json.RawMessage) (Details, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrDetailsRequired
	}
	if !json.Valid(trimmed) {
		return nil, ErrDetailsInvalid
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, ErrDetailsInvalid
	}
	if !truthy(value) {
		return nil, ErrDetailsRequired
	}
	doc := rawDocument{raw: append(json.RawMessage(nil), trimmed...)}

	switch v := value.(type) {
	case string:
		return TextDetails{rawDocument: doc, Text: v}, nil
	case map[string]any:
		return objectDetails(bookingType, doc, v), nil
	default:
		return DocumentDetails{rawDocument: doc, Value: value}, nil
	}
}

func objectDetails(bookingType string, doc rawDocument, fields map[string]any) Details {
	switch strings.ToLower(bookingType) {
	case TypeFlight:
		return FlightDetails{
			rawDocument:     doc,
			Origin:          stringField(fields, "origin"),
			Destination:     stringField(fields, "destination"),
			Airline:         stringField(fields, "airline"),
			FlightNumber:    stringField(fields, "flight_number"),
			Passport:        stringField(fields, "passport"),
			Nationality:     stringField(fields, "nationality"),
			BankBalance:     fields["bankBalance"],
			CriminalHistory: fields["criminalHistory"],
		}
	case TypeHotel:
		return HotelDetails{
			rawDocument: doc,
			HotelName:   stringField(fields, "hotel_name"),
			Address:     stringField(fields, "address"),
			RoomType:    stringField(fields, "room_type"),
			Guests:      int(numberField(fields, "guests")),
		}
	default:
		return DocumentDetails{rawDocument: doc, Value: fields}
	}
}

// truthy reports whether a decoded JSON value counts as set: anything except
// null, false, 0 and "".
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func numberField(m map[string]any, key string) float64 {
	f, _ := m[key].(float64)
	return f
}

const unknownVisaField = "UNKNOWN"

// VisaProfile is what the visa service needs to know about a traveller.
type VisaProfile struct {
	Passport        string
	Country         string
	BankBalance     any
	CriminalHistory any
}

// VisaProfileOf extracts the visa profile from flight details. Absent or
// empty values fall back to "UNKNOWN", 0 and false; any other balance or
// history value is passed on unchanged.
func VisaProfileOf(d Details) VisaProfile {
	profile := VisaProfile{
		Passport:        unknownVisaField,
		Country:         unknownVisaField,
		BankBalance:     float64(0),
		CriminalHistory: false,
	}
	flight, ok := d.(FlightDetails)
	if !ok {
		return profile
	}
	if flight.Passport != "" {
		profile.Passport = flight.Passport
	}
	if flight.Nationality != "" {
		profile.Country = flight.Nationality
	}
	if truthy(flight.BankBalance) {
		profile.BankBalance = flight.BankBalance
	}
	if truthy(flight.CriminalHistory) {
		profile.CriminalHistory = flight.CriminalHistory
	}
	return profile
}
