package usecases

import (
	"context"
	"time"

	"github.com/travelease/callcenter/internal/domain/booking"
	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type mockBookingRepository struct {
	CreateFunc         func(ctx context.Context, b *booking.Booking) error
	GetByIDFunc        func(ctx context.Context, id uint) (*booking.Booking, error)
	GetByReferenceFunc func(ctx context.Context, reference string) (*booking.Booking, error)
	ListRecentFunc     func(ctx context.Context, limit int) ([]*booking.Booking, error)
	ListByCustomerFunc func(ctx context.Context, customerID uint) ([]*booking.Booking, error)
	UpdateStatusFunc   func(ctx context.Context, id uint, status vo.BookingStatus, at time.Time) (*booking.Booking, error)
	ExistsFunc         func(ctx context.Context, id uint) (bool, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, booking.ErrBookingNotFound
}

func (m *mockBookingRepository) GetByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	return nil, booking.ErrBookingNotFound
}

func (m *mockBookingRepository) ListRecent(ctx context.Context, limit int) ([]*booking.Booking, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockBookingRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*booking.Booking, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id uint, status vo.BookingStatus, at time.Time) (*booking.Booking, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, at)
	}
	return nil, booking.ErrBookingNotFound
}

func (m *mockBookingRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type mockModificationRepository struct {
	CreateFunc        func(ctx context.Context, m *booking.Modification) error
	ListByBookingFunc func(ctx context.Context, bookingID uint) ([]*booking.ModificationView, error)
}

func (m *mockModificationRepository) Create(ctx context.Context, mod *booking.Modification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mod)
	}
	return nil
}

func (m *mockModificationRepository) ListByBooking(ctx context.Context, bookingID uint) ([]*booking.ModificationView, error) {
	if m.ListByBookingFunc != nil {
		return m.ListByBookingFunc(ctx, bookingID)
	}
	return nil, nil
}

// mockTransactor runs the unit of work inline and records whether it did.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

func buildBooking(id uint, bookingType string, details string) *booking.Booking {
	d, err := booking.ParseDetails(bookingType, []byte(details))
	if err != nil {
		panic(err)
	}
	b, err := booking.ReconstructBooking(id, 3, "TE-100", bookingType, vo.StatusConfirmed, 420, "USD", "2025-06-01", nil, d, testNow, testNow)
	if err != nil {
		panic(err)
	}
	return b
}
