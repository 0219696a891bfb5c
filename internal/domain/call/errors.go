package call

import "errors"

var (
	ErrCallNotFound = errors.New("call not found")
	// ErrCallNotAssignable covers both a missing call and one that has left
	// the waiting state; the conditional update cannot tell them apart.
	ErrCallNotAssignable = errors.New("call not found or already assigned")
)
