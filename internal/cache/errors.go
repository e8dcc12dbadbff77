package cache

import "errors"

var (
	// ErrPermissionDenied is returned by local actions on entries the
	// participant may only read.
	ErrPermissionDenied = errors.New("permission denied")

	ErrTopicNotFound = errors.New("topic not found")
	ErrNoteNotFound  = errors.New("note not found")
	ErrEmptyName     = errors.New("empty name")

	// ErrCacheClosed is returned by local actions on a cache that was
	// closed, e.g. after its zone was dropped.
	ErrCacheClosed = errors.New("cache is closed")
)
