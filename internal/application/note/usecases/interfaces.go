package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/note/dto"
)

type CreateNoteExecutor interface {
	Execute(ctx context.Context, cmd CreateNoteCommand) (*dto.NoteDTO, error)
}

type ListNotesExecutor interface {
	Execute(ctx context.Context, query ListNotesQuery) ([]*dto.NoteDTO, error)
}
