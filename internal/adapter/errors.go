package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrInvalidAddress      = errors.New("invalid server address")
)
