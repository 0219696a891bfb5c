package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/domain/booking"
	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/mappers"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/db"
	apperrors "github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type BookingRepository struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
	logger logger.Interface
}

func NewBookingRepository(db *gorm.DB, logger logger.Interface) *BookingRepository {
	return &BookingRepository{
		db:     db,
		mapper: mappers.NewBookingMapper(),
		logger: logger,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return booking.ErrDuplicateReference
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	return r.first(ctx, "reference_number = ?", reference)
}

func (r *BookingRepository) first(ctx context.Context, query string, arg any) (*booking.Booking, error) {
	var model models.BookingModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]*booking.Booking, error) {
	var rows []models.BookingModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NewestFirst(""), db.Limit(limit)).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return r.toDomainList(rows), nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*booking.Booking, error) {
	var rows []models.BookingModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("customer_id = ?", customerID).
		Scopes(db.NewestFirst("")).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	return r.toDomainList(rows), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uint, status vo.BookingStatus, at time.Time) (*booking.Booking, error) {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": biztime.ToMillis(at),
		}).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Exists is used inside transactions as the guard before dependent inserts.
// Bookings are never deleted, so a positive answer stays true.
func (r *BookingRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookingModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check booking: %w", err)
	}
	return count > 0, nil
}

func (r *BookingRepository) toDomainList(rows []models.BookingModel) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(rows))
	for i := range rows {
		b, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			r.logger.Warnw("skipping unreadable booking row", "booking_id", rows[i].ID, "error", err)
			continue
		}
		out = append(out, b)
	}
	return out
}

type BookingModificationRepository struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
}

func NewBookingModificationRepository(db *gorm.DB) *BookingModificationRepository {
	return &BookingModificationRepository{
		db:     db,
		mapper: mappers.NewBookingMapper(),
	}
}

func (r *BookingModificationRepository) Create(ctx context.Context, m *booking.Modification) error {
	model := r.mapper.ModificationToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create booking modification: %w", err)
	}
	m.SetID(model.ID)
	return nil
}

func (r *BookingModificationRepository) ListByBooking(ctx context.Context, bookingID uint) ([]*booking.ModificationView, error) {
	var rows []models.BookingModificationRow
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookingModificationModel{}).
		Select("booking_modifications.*, agents.name AS agent_name").
		Joins("LEFT JOIN agents ON agents.id = booking_modifications.agent_id").
		Where("booking_modifications.booking_id = ?", bookingID).
		Scopes(db.NewestFirst("booking_modifications")).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list booking modifications: %w", err)
	}

	views := make([]*booking.ModificationView, 0, len(rows))
	for i := range rows {
		views = append(views, r.mapper.ModificationRowToView(&rows[i]))
	}
	return views, nil
}
