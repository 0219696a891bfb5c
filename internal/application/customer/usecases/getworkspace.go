package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	bookingdto "github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/application/customer/dto"
	notedto "github.com/travelease/callcenter/internal/application/note/dto"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/domain/note"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/services/markdown"
)

type GetWorkspaceQuery struct {
	CustomerID uint
}

// GetWorkspaceUseCase loads a customer with their bookings and notes.
type GetWorkspaceUseCase struct {
	customerRepo customer.Repository
	bookingRepo  booking.Repository
	noteRepo     note.Repository
	markdown     markdown.Renderer
	logger       logger.Interface
}

func NewGetWorkspaceUseCase(
	customerRepo customer.Repository,
	bookingRepo booking.Repository,
	noteRepo note.Repository,
	md markdown.Renderer,
	logger logger.Interface,
) *GetWorkspaceUseCase {
	return &GetWorkspaceUseCase{
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		noteRepo:     noteRepo,
		markdown:     md,
		logger:       logger,
	}
}

// Execute runs the three lookups concurrently; the first failure cancels
// the others.
func (uc *GetWorkspaceUseCase) Execute(ctx context.Context, query GetWorkspaceQuery) (*dto.WorkspaceDTO, error) {
	var (
		c        *customer.Customer
		bookings []*booking.Booking
		notes    []*note.View
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = uc.customerRepo.GetByID(gctx, query.CustomerID)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.ListByCustomer(gctx, query.CustomerID)
		return err
	})
	g.Go(func() error {
		var err error
		notes, err = uc.noteRepo.ListByCustomer(gctx, query.CustomerID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, translateCustomerError(uc.logger, err, query.CustomerID)
	}

	return &dto.WorkspaceDTO{
		Customer: dto.ToCustomerDTO(c),
		Bookings: bookingdto.ToBookingDTOs(bookings),
		Notes:    notedto.ToNoteDTOs(notes, uc.markdown),
	}, nil
}
