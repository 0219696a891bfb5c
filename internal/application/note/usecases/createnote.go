package usecases

import (
	"context"
	stderrors "errors"

	"github.com/travelease/callcenter/internal/application/note/dto"
	"github.com/travelease/callcenter/internal/domain/note"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/services/markdown"
)

type CreateNoteCommand struct {
	CustomerID *uint
	BookingID  *uint
	CallID     *uint
	AgentID    *uint
	Content    string
}

type CreateNoteUseCase struct {
	noteRepo note.Repository
	markdown markdown.Renderer
	clock    biztime.Clock
	logger   logger.Interface
}

func NewCreateNoteUseCase(noteRepo note.Repository, md markdown.Renderer, clock biztime.Clock, logger logger.Interface) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo: noteRepo,
		markdown: md,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *CreateNoteUseCase) Execute(ctx context.Context, cmd CreateNoteCommand) (*dto.NoteDTO, error) {
	n, err := note.NewNote(cmd.CustomerID, cmd.BookingID, cmd.CallID, cmd.AgentID, cmd.Content, uc.clock.Now())
	if err != nil {
		uc.logger.Warnw("invalid note", "error", err)
		switch {
		case stderrors.Is(err, note.ErrContentRequired):
			return nil, errors.NewValidationError("Note content is required")
		case stderrors.Is(err, note.ErrSubjectRequired):
			return nil, errors.NewValidationError("Either customer_id or booking_id is required")
		default:
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.noteRepo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to create note", "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}

	uc.logger.Infow("note created", "note_id", n.ID())
	return dto.ToNoteDTO(n, nil, uc.markdown), nil
}
