package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/booking/dto"
)

type CreateBookingExecutor interface {
	Execute(ctx context.Context, cmd CreateBookingCommand) (*dto.BookingDTO, error)
}

type GetBookingExecutor interface {
	Execute(ctx context.Context, query GetBookingQuery) (*dto.BookingDTO, error)
}

type ListBookingsExecutor interface {
	Execute(ctx context.Context, query ListBookingsQuery) ([]*dto.BookingDTO, error)
}

type SetBookingStatusExecutor interface {
	Execute(ctx context.Context, cmd SetBookingStatusCommand) (*dto.BookingDTO, error)
}

type RequestModificationExecutor interface {
	Execute(ctx context.Context, cmd RequestModificationCommand) (*dto.ModificationDTO, error)
}

type ListModificationsExecutor interface {
	Execute(ctx context.Context, query ListModificationsQuery) ([]*dto.ModificationDTO, error)
}
