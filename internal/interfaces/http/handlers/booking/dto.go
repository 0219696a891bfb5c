package booking

import (
	"encoding/json"

	"github.com/travelease/callcenter/internal/application/booking/usecases"
)

type CreateBookingRequest struct {
	CustomerID      uint            `json:"customer_id" binding:"required"`
	ReferenceNumber string          `json:"reference_number" binding:"required"`
	BookingType     string          `json:"booking_type" binding:"required"`
	Price           float64         `json:"price" binding:"required"`
	Currency        string          `json:"currency"`
	StartDate       string          `json:"start_date" binding:"required"`
	EndDate         *string         `json:"end_date"`
	Details         json.RawMessage `json:"details" binding:"required"`
}

func (r *CreateBookingRequest) ValidationMessage() string {
	return "Missing required fields"
}

func (r *CreateBookingRequest) ToCommand() usecases.CreateBookingCommand {
	return usecases.CreateBookingCommand{
		CustomerID:      r.CustomerID,
		ReferenceNumber: r.ReferenceNumber,
		BookingType:     r.BookingType,
		Price:           r.Price,
		Currency:        r.Currency,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Details:         r.Details,
	}
}

type SetBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *SetBookingStatusRequest) ValidationMessage() string {
	return "Invalid status"
}

type RequestModificationRequest struct {
	RequestedChanges string `json:"requested_changes" binding:"required"`
	Reason           string `json:"reason"`
	AgentID          *uint  `json:"agent_id"`
}
