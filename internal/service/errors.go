package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidTokenConfig    = errors.New("change token sign key and ttl are required")

	ErrNoCurrentZone = errors.New("no zone selected")
	ErrUnknownZone   = errors.New("zone is not cached")
)
