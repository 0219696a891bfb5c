package dto

import (
	"encoding/json"
	"time"

	"github.com/travelease/callcenter/internal/domain/booking"
)

type BookingDTO struct {
	ID              uint            `json:"id"`
	CustomerID      uint            `json:"customer_id"`
	ReferenceNumber string          `json:"reference_number"`
	BookingType     string          `json:"booking_type"`
	Status          string          `json:"status"`
	Price           float64         `json:"price"`
	Currency        string          `json:"currency"`
	StartDate       string          `json:"start_date"`
	EndDate         *string         `json:"end_date"`
	Details         json.RawMessage `json:"details"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ModificationDTO struct {
	ID               uint      `json:"id"`
	BookingID        uint      `json:"booking_id"`
	RequestedChanges string    `json:"requested_changes"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	AgentID          *uint     `json:"agent_id"`
	AgentName        *string   `json:"agent_name"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToBookingDTO(b *booking.Booking) *BookingDTO {
	if b == nil {
		return nil
	}

	out := &BookingDTO{
		ID:              b.ID(),
		CustomerID:      b.CustomerID(),
		ReferenceNumber: b.ReferenceNumber(),
		BookingType:     b.BookingType(),
		Status:          b.Status().String(),
		Price:           b.Price(),
		Currency:        b.Currency(),
		StartDate:       b.StartDate(),
		EndDate:         b.EndDate(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	if d := b.Details(); d != nil {
		out.Details = d.Raw()
	}
	return out
}

func ToBookingDTOs(bookings []*booking.Booking) []*BookingDTO {
	out := make([]*BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingDTO(b))
	}
	return out
}

func ToModificationDTO(m *booking.Modification) *ModificationDTO {
	return &ModificationDTO{
		ID:               m.ID(),
		BookingID:        m.BookingID(),
		RequestedChanges: m.RequestedChanges(),
		Reason:           m.Reason(),
		Status:           m.Status().String(),
		AgentID:          m.AgentID(),
		CreatedAt:        m.CreatedAt(),
	}
}

func ToModificationDTOs(views []*booking.ModificationView) []*ModificationDTO {
	out := make([]*ModificationDTO, 0, len(views))
	for _, v := range views {
		item := ToModificationDTO(v.Modification)
		item.AgentName = v.AgentName
		out = append(out, item)
	}
	return out
}
