package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/travelease/callcenter/internal/application/visa"
	"github.com/travelease/callcenter/internal/domain/booking"
	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
	"github.com/travelease/callcenter/internal/domain/customer"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) SubmitApplication(ctx context.Context, app visa.Application) (*visa.Decision, error) {
	args := m.Called(ctx, app)
	if d := args.Get(0); d != nil {
		return d.(*visa.Decision), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) ListApplications(ctx context.Context, userID string) (json.RawMessage, error) {
	args := m.Called(ctx, userID)
	if raw := args.Get(0); raw != nil {
		return raw.(json.RawMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockInvalidator struct {
	mock.Mock
}

func (m *mockInvalidator) Invalidate(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// stubBookingRepository serves a fixed set of bookings by id.
type stubBookingRepository struct {
	booking.Repository
	bookings map[uint]*booking.Booking
}

func (s *stubBookingRepository) GetByID(_ context.Context, id uint) (*booking.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		return b, nil
	}
	return nil, booking.ErrBookingNotFound
}

type stubCustomerRepository struct {
	customer.Repository
	customers map[uint]*customer.Customer
}

func (s *stubCustomerRepository) GetByID(_ context.Context, id uint) (*customer.Customer, error) {
	if c, ok := s.customers[id]; ok {
		return c, nil
	}
	return nil, customer.ErrCustomerNotFound
}

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func buildBooking(id, customerID uint, bookingType, details string) *booking.Booking {
	d, err := booking.ParseDetails(bookingType, []byte(details))
	if err != nil {
		panic(err)
	}
	b, err := booking.ReconstructBooking(id, customerID, "TE-1", bookingType, vo.StatusConfirmed, 100, "USD", "2025-06-01", nil, d, testNow, testNow)
	if err != nil {
		panic(err)
	}
	return b
}
