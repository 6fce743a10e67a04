package promptdb

import "errors"

var (
	// ErrNotFound is returned when an identifier is absent from the store.
	ErrNotFound = errors.New("prompt not found")

	// ErrInvalidIndex is returned for thumbnail slot indices outside the pool.
	ErrInvalidIndex = errors.New("invalid thumbnail index")

	// ErrMalformed marks persisted or uploaded state that failed to parse or validate.
	ErrMalformed = errors.New("malformed library document")

	// ErrIO marks a failed read or write of the persisted document.
	ErrIO = errors.New("library persistence failure")
)
