package dto

import (
	"time"

	"github.com/travelease/callcenter/internal/domain/call"
)

type CallDTO struct {
	ID               uint       `json:"id"`
	CustomerID       uint       `json:"customer_id"`
	IssueType        string     `json:"issue_type"`
	Description      string     `json:"description"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	AgentID          *uint      `json:"agent_id"`
	StartTime        *time.Time `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	TransferReason   *string    `json:"transfer_reason"`
	TransferCount    int        `json:"transfer_count"`
	ResolutionStatus *string    `json:"resolution_status"`
	ResolutionNote   *string    `json:"resolution_note"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// QueueEntryDTO is one waiting call as shown on the queue board.
type QueueEntryDTO struct {
	ID              uint      `json:"id"`
	CustomerID      uint      `json:"customer_id"`
	IssueType       string    `json:"issue_type"`
	Description     string    `json:"description"`
	Priority        string    `json:"priority"`
	CreatedAt       time.Time `json:"created_at"`
	CustomerName    *string   `json:"customer_name"`
	CustomerPhone   *string   `json:"customer_phone"`
	CustomerEmail   *string   `json:"customer_email"`
	MembershipLevel *string   `json:"membership_level"`
}

// CallDetailDTO is a call with its customer contact and agent name.
type CallDetailDTO struct {
	CallDTO
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	AgentName     *string `json:"agent_name"`
}

func ToCallDTO(c *call.Call) *CallDTO {
	if c == nil {
		return nil
	}

	out := &CallDTO{
		ID:             c.ID(),
		CustomerID:     c.CustomerID(),
		IssueType:      c.IssueType(),
		Description:    c.Description(),
		Priority:       c.Priority().String(),
		Status:         c.Status().String(),
		AgentID:        c.AgentID(),
		StartTime:      c.StartTime(),
		EndTime:        c.EndTime(),
		TransferReason: optional(c.TransferReason()),
		TransferCount:  c.TransferCount(),
		ResolutionNote: optional(c.ResolutionNote()),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
	if r := c.ResolutionStatus(); r != nil {
		s := r.String()
		out.ResolutionStatus = &s
	}
	return out
}

func ToCallDetailDTO(v *call.View) *CallDetailDTO {
	if v == nil {
		return nil
	}

	out := &CallDetailDTO{
		CallDTO:   *ToCallDTO(v.Call),
		AgentName: v.AgentName,
	}
	if v.Contact != nil {
		out.CustomerName = &v.Contact.Name
		out.CustomerPhone = &v.Contact.Phone
		out.CustomerEmail = &v.Contact.Email
	}
	return out
}

func ToQueueEntryDTO(v *call.View) QueueEntryDTO {
	c := v.Call
	out := QueueEntryDTO{
		ID:          c.ID(),
		CustomerID:  c.CustomerID(),
		IssueType:   c.IssueType(),
		Description: c.Description(),
		Priority:    c.Priority().String(),
		CreatedAt:   c.CreatedAt(),
	}
	if v.Contact != nil {
		out.CustomerName = &v.Contact.Name
		out.CustomerPhone = &v.Contact.Phone
		out.CustomerEmail = &v.Contact.Email
		out.MembershipLevel = &v.Contact.MembershipLevel
	}
	return out
}

func ToQueueDTOs(views []*call.View) []QueueEntryDTO {
	out := make([]QueueEntryDTO, 0, len(views))
	for _, v := range views {
		out = append(out, ToQueueEntryDTO(v))
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
