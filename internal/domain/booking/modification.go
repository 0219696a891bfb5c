package booking

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
)

// Modification is an append-only change request against a booking.
type Modification struct {
	id               uint
	bookingID        uint
	requestedChanges string
	reason           string
	status           vo.ModificationStatus
	agentID          *uint
	createdAt        time.Time
}

func NewModification(bookingID uint, requestedChanges, reason string, agentID *uint, now time.Time) (*Modification, error) {
	if bookingID == 0 {
		return nil, fmt.Errorf("booking ID is required")
	}
	if strings.TrimSpace(requestedChanges) == "" {
		return nil, fmt.Errorf("requested_changes is required")
	}
	if agentID != nil && *agentID == 0 {
		agentID = nil
	}

	return &Modification{
		bookingID:        bookingID,
		requestedChanges: requestedChanges,
		reason:           reason,
		status:           vo.ModificationPending,
		agentID:          agentID,
		createdAt:        now,
	}, nil
}

func ReconstructModification(
	id, bookingID uint,
	requestedChanges, reason string,
	status vo.ModificationStatus,
	agentID *uint,
	createdAt time.Time,
) *Modification {
	return &Modification{
		id:               id,
		bookingID:        bookingID,
		requestedChanges: requestedChanges,
		reason:           reason,
		status:           status,
		agentID:          agentID,
		createdAt:        createdAt,
	}
}

func (m *Modification) ID() uint {
	return m.id
}

func (m *Modification) BookingID() uint {
	return m.bookingID
}

func (m *Modification) RequestedChanges() string {
	return m.requestedChanges
}

func (m *Modification) Reason() string {
	return m.reason
}

func (m *Modification) Status() vo.ModificationStatus {
	return m.status
}

func (m *Modification) AgentID() *uint {
	return m.agentID
}

func (m *Modification) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Modification) SetID(id uint) {
	m.id = id
}

// ModificationView pairs a modification with the requesting agent's name,
// nil when the agent row does not exist.
type ModificationView struct {
	Modification *Modification
	AgentName    *string
}
