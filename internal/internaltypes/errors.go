package internaltypes

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrRejected is returned when the remote endpoint answers with a non-2xx status.
	ErrRejected = errors.New("request rejected")
)
