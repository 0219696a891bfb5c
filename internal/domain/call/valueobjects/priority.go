package valueobjects

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"

	DefaultPriority = PriorityMedium
)

var priorityRanks = map[Priority]int{
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// unrankedPriority sorts values outside the known set after low.
const unrankedPriority = 4

func (p Priority) String() string {
	return string(p)
}

// Rank orders the queue: lower ranks are served first.
func (p Priority) Rank() int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return unrankedPriority
}

// MaxPriorityLength bounds the stored priority column.
const MaxPriorityLength = 20

// NewPriority parses a caller supplied priority. An empty value yields the
// default priority. Values outside high, medium and low are kept as given and
// rank after low.
func NewPriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultPriority, nil
	}
	if len(s) > MaxPriorityLength {
		return "", fmt.Errorf("priority exceeds maximum length of %d characters", MaxPriorityLength)
	}
	return Priority(s), nil
}
