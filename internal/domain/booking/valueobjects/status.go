package valueobjects

import "fmt"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

var validBookingStatuses = map[BookingStatus]bool{
	StatusConfirmed: true,
	StatusPending:   true,
	StatusCancelled: true,
	StatusCompleted: true,
}

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	return validBookingStatuses[s]
}

func NewBookingStatus(s string) (BookingStatus, error) {
	bs := BookingStatus(s)
	if !bs.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return bs, nil
}

// ModificationStatus tracks a change request. Requests are only ever
// created as pending.
type ModificationStatus string

const (
	ModificationPending ModificationStatus = "pending"
)

func (s ModificationStatus) String() string {
	return string(s)
}
