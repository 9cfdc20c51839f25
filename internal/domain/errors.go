package domain

import "errors"

var (
	// ErrInvalidArgument signals a missing or malformed input at the API boundary.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIDGeneration signals that no free identifier could be generated.
	ErrIDGeneration = errors.New("id generation failed")
)
