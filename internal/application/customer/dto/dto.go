package dto

import (
	"time"

	bookingdto "github.com/travelease/callcenter/internal/application/booking/dto"
	notedto "github.com/travelease/callcenter/internal/application/note/dto"
	"github.com/travelease/callcenter/internal/domain/customer"
)

type CustomerDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	MembershipLevel string    `json:"membership_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WorkspaceDTO is everything the agent dashboard shows for one customer.
type WorkspaceDTO struct {
	Customer *CustomerDTO             `json:"customer"`
	Bookings []*bookingdto.BookingDTO `json:"bookings"`
	Notes    []*notedto.NoteDTO       `json:"notes"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:              c.ID(),
		Name:            c.Name(),
		Email:           c.Email(),
		Phone:           c.Phone(),
		MembershipLevel: c.MembershipLevel(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func ToCustomerDTOs(customers []*customer.Customer) []*CustomerDTO {
	out := make([]*CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerDTO(c))
	}
	return out
}
