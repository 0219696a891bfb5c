package note

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrContentRequired = errors.New("note content is required")
	ErrSubjectRequired = errors.New("either customer_id or booking_id is required")
)

// Note is free-form agent commentary attached to a customer, a booking or
// both. Notes are append-only.
type Note struct {
	id         uint
	customerID *uint
	bookingID  *uint
	callID     *uint
	agentID    *uint
	content    string
	createdAt  time.Time
}

func NewNote(customerID, bookingID, callID, agentID *uint, content string, now time.Time) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	customerID, bookingID = nonZero(customerID), nonZero(bookingID)
	if customerID == nil && bookingID == nil {
		return nil, ErrSubjectRequired
	}

	return &Note{
		customerID: customerID,
		bookingID:  bookingID,
		callID:     nonZero(callID),
		agentID:    nonZero(agentID),
		content:    content,
		createdAt:  now,
	}, nil
}

func nonZero(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func ReconstructNote(id uint, customerID, bookingID, callID, agentID *uint, content string, createdAt time.Time) *Note {
	return &Note{
		id:         id,
		customerID: customerID,
		bookingID:  bookingID,
		callID:     callID,
		agentID:    agentID,
		content:    content,
		createdAt:  createdAt,
	}
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) CustomerID() *uint {
	return n.customerID
}

func (n *Note) BookingID() *uint {
	return n.bookingID
}

func (n *Note) CallID() *uint {
	return n.callID
}

func (n *Note) AgentID() *uint {
	return n.agentID
}

func (n *Note) Content() string {
	return n.content
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) SetID(id uint) {
	n.id = id
}

// View is a note with its author's name, nil for unknown agents.
type View struct {
	Note      *Note
	AgentName *string
}

type Repository interface {
	Create(ctx context.Context, n *Note) error
	ListByCustomer(ctx context.Context, customerID uint) ([]*View, error)
	ListByBooking(ctx context.Context, bookingID uint) ([]*View, error)
}
