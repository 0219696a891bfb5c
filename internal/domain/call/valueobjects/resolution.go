package valueobjects

import "fmt"

// Resolution records how a completed call ended.
type Resolution string

const (
	ResolutionResolved   Resolution = "resolved"
	ResolutionUnresolved Resolution = "unresolved"
	ResolutionEscalated  Resolution = "escalated"
	ResolutionCallback   Resolution = "callback"
)

var validResolutions = map[Resolution]bool{
	ResolutionResolved:   true,
	ResolutionUnresolved: true,
	ResolutionEscalated:  true,
	ResolutionCallback:   true,
}

func (r Resolution) String() string {
	return string(r)
}

func (r Resolution) IsValid() bool {
	return validResolutions[r]
}

func NewResolution(s string) (Resolution, error) {
	r := Resolution(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid resolution status: %s", s)
	}
	return r, nil
}
