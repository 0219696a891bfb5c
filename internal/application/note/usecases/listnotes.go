package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/note/dto"
	"github.com/travelease/callcenter/internal/domain/note"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/services/markdown"
)

// ListNotesQuery selects notes by exactly one subject.
type ListNotesQuery struct {
	CustomerID uint
	BookingID  uint
}

type ListNotesUseCase struct {
	noteRepo note.Repository
	markdown markdown.Renderer
	logger   logger.Interface
}

func NewListNotesUseCase(noteRepo note.Repository, md markdown.Renderer, logger logger.Interface) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
		markdown: md,
		logger:   logger,
	}
}

// Execute lists notes newest first.
func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) ([]*dto.NoteDTO, error) {
	var (
		views []*note.View
		err   error
	)
	switch {
	case query.CustomerID != 0:
		views, err = uc.noteRepo.ListByCustomer(ctx, query.CustomerID)
	case query.BookingID != 0:
		views, err = uc.noteRepo.ListByBooking(ctx, query.BookingID)
	default:
		return nil, errors.NewValidationError("Either customer_id or booking_id is required")
	}
	if err != nil {
		uc.logger.Errorw("failed to list notes",
			"customer_id", query.CustomerID,
			"booking_id", query.BookingID,
			"error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}
	return dto.ToNoteDTOs(views, uc.markdown), nil
}
