package store

import "errors"

// Error kinds that route handlers are allowed to switch on. Anything
// else coming out of the store is an internal failure.
var (
	// ErrNotFound means the target bookmark id has no matching row.
	ErrNotFound = errors.New("bookmark not found")

	// ErrDuplicateURL means the write would violate the unique
	// constraint on bookmarks.url.
	ErrDuplicateURL = errors.New("url already registered")
)
