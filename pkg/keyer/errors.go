package keyer

import "errors"

var (
	// ErrEmptyMessage indicates a preset has nothing to transmit.
	ErrEmptyMessage = errors.New("message has no encodable letters")
)
