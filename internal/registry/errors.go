package registry

import "errors"

var (
	ErrEmptyDomainID   = errors.New("empty domain id")
	ErrDomainsDirUnset = errors.New("domains directory is not set")
)
