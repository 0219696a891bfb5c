package agent

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrAgentNotFound = errors.New("agent not found")

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusBreak   Status = "break"
	StatusBusy    Status = "busy"
)

var validStatuses = map[Status]bool{
	StatusOnline:  true,
	StatusOffline: true,
	StatusBreak:   true,
	StatusBusy:    true,
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid agent status: %s", s)
	}
	return st, nil
}

// Agent is a support representative. Agents are provisioned outside this
// service; only their presence status changes here.
type Agent struct {
	id        uint
	name      string
	email     string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructAgent(id uint, name, email string, status Status, createdAt, updatedAt time.Time) *Agent {
	return &Agent{
		id:        id,
		name:      name,
		email:     email,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Agent) ID() uint {
	return a.id
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Email() string {
	return a.email
}

func (a *Agent) Status() Status {
	return a.status
}

func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Agent) UpdatedAt() time.Time {
	return a.updatedAt
}

type Repository interface {
	List(ctx context.Context) ([]*Agent, error)
	GetByID(ctx context.Context, id uint) (*Agent, error)
	UpdateStatus(ctx context.Context, id uint, status Status, at time.Time) (*Agent, error)
}
