package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/domain/note"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/mappers"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/db"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	model := mappers.NoteToModel(n)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	n.SetID(model.ID)
	return nil
}

func (r *NoteRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*note.View, error) {
	return r.list(ctx, "notes.customer_id = ?", customerID)
}

func (r *NoteRepository) ListByBooking(ctx context.Context, bookingID uint) ([]*note.View, error) {
	return r.list(ctx, "notes.booking_id = ?", bookingID)
}

func (r *NoteRepository) list(ctx context.Context, query string, arg uint) ([]*note.View, error) {
	var rows []models.NoteRow
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NoteModel{}).
		Select("notes.*, agents.name AS agent_name").
		Joins("LEFT JOIN agents ON agents.id = notes.agent_id").
		Where(query, arg).
		Scopes(db.NewestFirst("notes")).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	views := make([]*note.View, 0, len(rows))
	for i := range rows {
		views = append(views, mappers.NoteRowToView(&rows[i]))
	}
	return views, nil
}
