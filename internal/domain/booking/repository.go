package booking

import (
	"context"
	"time"

	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
)

type Repository interface {
	// Create returns ErrDuplicateReference when the reference number is taken.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	ListRecent(ctx context.Context, limit int) ([]*Booking, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id uint, status vo.BookingStatus, at time.Time) (*Booking, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// ModificationRepository stores change requests; rows are never updated.
type ModificationRepository interface {
	Create(ctx context.Context, m *Modification) error
	ListByBooking(ctx context.Context, bookingID uint) ([]*ModificationView, error)
}
