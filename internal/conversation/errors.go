package conversation

import "errors"

// Failure categories for the chat pipeline. The wire contract collapses both
// into one generic 500 shape, but logs and callers can still tell them apart
// with errors.Is.
var (
	// ErrUpstream marks a failed inference gateway call. Nothing was persisted.
	ErrUpstream = errors.New("inference gateway failure")

	// ErrPersistence marks a failed store access. When it happens after a
	// successful gateway call the generated reply is discarded and the turn
	// is not recorded.
	ErrPersistence = errors.New("conversation store failure")
)
