package notify

import "errors"

var (
	ErrBusClosed          = errors.New("bus closed")
	ErrSubscriptionClosed = errors.New("subscription closed")
	ErrEventDropped       = errors.New("event dropped")
	ErrNilHandler         = errors.New("nil handler")
)
