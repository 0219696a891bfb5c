package booking

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrDuplicateReference = errors.New("reference number already exists")
)
