package logs

import "errors"

// Error taxonomy for repository operations. Handlers map these onto HTTP
// status codes; storage failures are wrapped with %w and fall through to 500.
var (
	// ErrValidation signals an empty required field (blank title, blank tag
	// name). The operation aborts before any write.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated signals that no user identity was supplied.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden signals that the caller is authenticated but does not own
	// the target log.
	ErrForbidden = errors.New("not the owner")

	// ErrNotFound signals that the target log does not exist.
	ErrNotFound = errors.New("learning log not found")
)
