package registry

import (
	"context"

	"github.com/MKhiriev/go-share-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_mock.go -package=mock

// DomainManager lists and edits the local sync roots.
type DomainManager interface {
	Domains(ctx context.Context) ([]models.Domain, error)
	AddDomain(ctx context.Context, domain models.Domain) error
	RemoveDomain(ctx context.Context, id models.DomainID) error
}

// AccountSource lists the remote accounts.
type AccountSource interface {
	Accounts(ctx context.Context) ([]models.Account, error)
}
