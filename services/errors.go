package services

import (
	"errors"
	"fmt"
)

// Operation error taxonomy. Every engine operation resolves to one of these
// (or succeeds); controllers translate them into HTTP status codes.
var (
	// ErrNotFound - a referenced user, request, or message does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyRequested - a live request already exists between the pair.
	ErrAlreadyRequested = errors.New("request already sent")
	// ErrInvalidArgument - empty or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable - the underlying store failed; the whole operation
	// may be retried by the caller. Engines never retry internally.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeErr tags an underlying persistence failure as retryable.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
