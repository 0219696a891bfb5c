package call

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/travelease/callcenter/internal/domain/call/valueobjects"
)

// Call is one inbound customer contact moving through the queue.
type Call struct {
	id               uint
	customerID       uint
	issueType        string
	description      string
	priority         vo.Priority
	status           vo.CallStatus
	agentID          *uint
	startTime        *time.Time
	endTime          *time.Time
	transferReason   string
	transferCount    int
	resolutionStatus *vo.Resolution
	resolutionNote   string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewCall creates a waiting call. now comes from the caller's clock.
func NewCall(customerID uint, issueType, description string, priority vo.Priority, now time.Time) (*Call, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	issueType = strings.TrimSpace(issueType)
	if issueType == "" {
		return nil, fmt.Errorf("issue type is required")
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}

	return &Call{
		customerID:  customerID,
		issueType:   issueType,
		description: description,
		priority:    priority,
		status:      vo.StatusWaiting,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructCall rebuilds a call from persistence. Stored priority values
// are taken as-is so that legacy rows still load and sort last.
func ReconstructCall(
	id uint,
	customerID uint,
	issueType string,
	description string,
	priority vo.Priority,
	status vo.CallStatus,
	agentID *uint,
	startTime, endTime *time.Time,
	transferReason string,
	transferCount int,
	resolutionStatus *vo.Resolution,
	resolutionNote string,
	createdAt, updatedAt time.Time,
) (*Call, error) {
	if id == 0 {
		return nil, fmt.Errorf("call ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid call status: %s", status)
	}

	return &Call{
		id:               id,
		customerID:       customerID,
		issueType:        issueType,
		description:      description,
		priority:         priority,
		status:           status,
		agentID:          agentID,
		startTime:        startTime,
		endTime:          endTime,
		transferReason:   transferReason,
		transferCount:    transferCount,
		resolutionStatus: resolutionStatus,
		resolutionNote:   resolutionNote,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Call) ID() uint {
	return c.id
}

func (c *Call) CustomerID() uint {
	return c.customerID
}

func (c *Call) IssueType() string {
	return c.issueType
}

func (c *Call) Description() string {
	return c.description
}

func (c *Call) Priority() vo.Priority {
	return c.priority
}

func (c *Call) Status() vo.CallStatus {
	return c.status
}

func (c *Call) AgentID() *uint {
	return c.agentID
}

func (c *Call) StartTime() *time.Time {
	return c.startTime
}

func (c *Call) EndTime() *time.Time {
	return c.endTime
}

func (c *Call) TransferReason() string {
	return c.transferReason
}

func (c *Call) TransferCount() int {
	return c.transferCount
}

func (c *Call) ResolutionStatus() *vo.Resolution {
	return c.resolutionStatus
}

func (c *Call) ResolutionNote() string {
	return c.resolutionNote
}

func (c *Call) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Call) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetID is used by the repository after insert.
func (c *Call) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("call ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("call ID cannot be zero")
	}
	c.id = id
	return nil
}
