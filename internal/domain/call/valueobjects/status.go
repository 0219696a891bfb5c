package valueobjects

import "fmt"

type CallStatus string

const (
	StatusWaiting     CallStatus = "waiting"
	StatusActive      CallStatus = "active"
	StatusOnHold      CallStatus = "on-hold"
	StatusCompleted   CallStatus = "completed"
	StatusTransferred CallStatus = "transferred"
)

var validCallStatuses = map[CallStatus]bool{
	StatusWaiting:     true,
	StatusActive:      true,
	StatusOnHold:      true,
	StatusCompleted:   true,
	StatusTransferred: true,
}

// settableStatuses are the targets accepted by a direct status change.
// waiting is only ever entered on enqueue.
var settableStatuses = map[CallStatus]bool{
	StatusActive:      true,
	StatusOnHold:      true,
	StatusCompleted:   true,
	StatusTransferred: true,
}

func (s CallStatus) String() string {
	return string(s)
}

func (s CallStatus) IsValid() bool {
	return validCallStatuses[s]
}

func (s CallStatus) IsSettable() bool {
	return settableStatuses[s]
}

func (s CallStatus) IsWaiting() bool {
	return s == StatusWaiting
}

func (s CallStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func NewCallStatus(s string) (CallStatus, error) {
	cs := CallStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid call status: %s", s)
	}
	return cs, nil
}
