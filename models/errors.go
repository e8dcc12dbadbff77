package models

import "errors"

var (
	// ErrUnknownPermission is returned when a permission name cannot be parsed.
	ErrUnknownPermission = errors.New("unknown permission")

	// ErrUnknownRecordType is returned when a record type name cannot be parsed.
	ErrUnknownRecordType = errors.New("unknown record type")
)

// Errors shared by the change-feed server and its clients. They cross the
// HTTP boundary as status codes and are mapped back on the client.
var (
	// ErrChangeTokenExpired means the server can no longer answer
	// incrementally from the given token; the client must refetch from
	// scratch.
	ErrChangeTokenExpired = errors.New("change token expired")

	// ErrZoneNotFound means the requested zone does not exist (anymore).
	ErrZoneNotFound = errors.New("zone not found")

	// ErrRecordNotFound means a record referenced by a request does not exist.
	ErrRecordNotFound = errors.New("record not found")
)
