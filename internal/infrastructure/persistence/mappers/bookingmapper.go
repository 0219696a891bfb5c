package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/travelease/callcenter/internal/domain/booking"
	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/biztime"
)

// BookingMapper converts bookings and their modification requests.
type BookingMapper interface {
	ToModel(b *booking.Booking) *models.BookingModel
	ToDomain(model *models.BookingModel) (*booking.Booking, error)
	ModificationToModel(m *booking.Modification) *models.BookingModificationModel
	ModificationRowToView(row *models.BookingModificationRow) *booking.ModificationView
}

type BookingMapperImpl struct{}

func NewBookingMapper() BookingMapper {
	return &BookingMapperImpl{}
}

func (m *BookingMapperImpl) ToModel(b *booking.Booking) *models.BookingModel {
	return &models.BookingModel{
		ID:              b.ID(),
		CustomerID:      b.CustomerID(),
		ReferenceNumber: b.ReferenceNumber(),
		BookingType:     b.BookingType(),
		Status:          b.Status().String(),
		Price:           b.Price(),
		Currency:        b.Currency(),
		StartDate:       b.StartDate(),
		EndDate:         b.EndDate(),
		Details:         datatypes.JSON(b.Details().Raw()),
		CreatedAt:       biztime.ToMillis(b.CreatedAt()),
		UpdatedAt:       biztime.ToMillis(b.UpdatedAt()),
	}
}

func (m *BookingMapperImpl) ToDomain(model *models.BookingModel) (*booking.Booking, error) {
	details, err := booking.ParseDetails(model.BookingType, json.RawMessage(model.Details))
	if err != nil {
		return nil, fmt.Errorf("failed to decode booking details (id=%d): %w", model.ID, err)
	}

	return booking.ReconstructBooking(
		model.ID,
		model.CustomerID,
		model.ReferenceNumber,
		model.BookingType,
		vo.BookingStatus(model.Status),
		model.Price,
		model.Currency,
		model.StartDate,
		model.EndDate,
		details,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *BookingMapperImpl) ModificationToModel(mod *booking.Modification) *models.BookingModificationModel {
	return &models.BookingModificationModel{
		ID:               mod.ID(),
		BookingID:        mod.BookingID(),
		RequestedChanges: mod.RequestedChanges(),
		Reason:           mod.Reason(),
		Status:           mod.Status().String(),
		AgentID:          mod.AgentID(),
		CreatedAt:        biztime.ToMillis(mod.CreatedAt()),
	}
}

func (m *BookingMapperImpl) ModificationRowToView(row *models.BookingModificationRow) *booking.ModificationView {
	return &booking.ModificationView{
		Modification: booking.ReconstructModification(
			row.ID,
			row.BookingID,
			row.RequestedChanges,
			row.Reason,
			vo.ModificationStatus(row.Status),
			row.AgentID,
			biztime.FromMillis(row.CreatedAt),
		),
		AgentName: row.AgentName,
	}
}
