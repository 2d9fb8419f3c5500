package mrm

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNoChoices indicates the API returned a well-formed reply with an
	// empty choices array. Treated the same as a malformed reply.
	ErrNoChoices = errors.New("reply contained no choices")

	// ErrEndpoint indicates the configured endpoint is not a usable URL.
	ErrEndpoint = errors.New("invalid endpoint")
)
