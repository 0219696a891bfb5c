package booking

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
	"github.com/travelease/callcenter/internal/shared/biztime"
)

// DefaultCurrency applies when a booking is created without one.
const DefaultCurrency = "USD"

type Booking struct {
	id              uint
	customerID      uint
	referenceNumber string
	bookingType     string
	status          vo.BookingStatus
	price           float64
	currency        string
	startDate       string
	endDate         *string
	details         Details
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a confirmed booking. Dates are YYYY-MM-DD calendar dates.
func NewBooking(
	customerID uint,
	referenceNumber string,
	bookingType string,
	price float64,
	currency string,
	startDate string,
	endDate *string,
	details Details,
	now time.Time,
) (*Booking, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	referenceNumber = strings.TrimSpace(referenceNumber)
	if referenceNumber == "" {
		return nil, fmt.Errorf("reference number is required")
	}
	if len(referenceNumber) > 64 {
		return nil, fmt.Errorf("reference number exceeds maximum length of 64 characters")
	}
	bookingType = strings.TrimSpace(bookingType)
	if bookingType == "" {
		return nil, fmt.Errorf("booking type is required")
	}
	if price <= 0 {
		return nil, fmt.Errorf("price must be greater than 0")
	}
	if details == nil {
		return nil, ErrDetailsRequired
	}

	start, err := biztime.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	if endDate != nil {
		end, err := biztime.ParseDate(*endDate)
		if err != nil {
			return nil, fmt.Errorf("end_date: %w", err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("end_date must not be before start_date")
		}
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Booking{
		customerID:      customerID,
		referenceNumber: referenceNumber,
		bookingType:     bookingType,
		status:          vo.StatusConfirmed,
		price:           price,
		currency:        currency,
		startDate:       start.Format(biztime.DateLayout),
		endDate:         endDate,
		details:         details,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBooking(
	id uint,
	customerID uint,
	referenceNumber string,
	bookingType string,
	status vo.BookingStatus,
	price float64,
	currency string,
	startDate string,
	endDate *string,
	details Details,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if id == 0 {
		return nil, fmt.Errorf("booking ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}

	return &Booking{
		id:              id,
		customerID:      customerID,
		referenceNumber: referenceNumber,
		bookingType:     bookingType,
		status:          status,
		price:           price,
		currency:        currency,
		startDate:       startDate,
		endDate:         endDate,
		details:         details,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (b *Booking) ID() uint {
	return b.id
}

func (b *Booking) CustomerID() uint {
	return b.customerID
}

func (b *Booking) ReferenceNumber() string {
	return b.referenceNumber
}

func (b *Booking) BookingType() string {
	return b.bookingType
}

func (b *Booking) Status() vo.BookingStatus {
	return b.status
}

func (b *Booking) Price() float64 {
	return b.price
}

func (b *Booking) Currency() string {
	return b.currency
}

func (b *Booking) StartDate() string {
	return b.startDate
}

func (b *Booking) EndDate() *string {
	return b.endDate
}

func (b *Booking) Details() Details {
	return b.details
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Booking) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("booking ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("booking ID cannot be zero")
	}
	b.id = id
	return nil
}

// IsFlight compares the booking type case-insensitively.
func (b *Booking) IsFlight() bool {
	return strings.EqualFold(b.bookingType, TypeFlight)
}
