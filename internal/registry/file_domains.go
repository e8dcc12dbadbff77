package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

const domainFileExt = ".json"

// FileDomainManager stores one JSON file per domain in a directory, so peer
// processes can add or remove domains by editing files.
type FileDomainManager struct {
	dir    string
	logger *logger.Logger
}

// NewFileDomainManager creates the directory if needed.
func NewFileDomainManager(dir string, log *logger.Logger) (*FileDomainManager, error) {
	if dir == "" {
		return nil, ErrDomainsDirUnset
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create domains dir: %w", err)
	}
	return &FileDomainManager{dir: dir, logger: log}, nil
}

// Dir returns the watched directory.
func (m *FileDomainManager) Dir() string {
	return m.dir
}

// Domains reads every domain file. Unreadable files are logged and skipped.
func (m *FileDomainManager) Domains(ctx context.Context) ([]models.Domain, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read domains dir: %w", err)
	}

	var out []models.Domain
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != domainFileExt {
			continue
		}

		data, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			m.logger.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable domain file")
			continue
		}
		var domain models.Domain
		if err := json.Unmarshal(data, &domain); err != nil || domain.ID == "" {
			m.logger.Warn().Err(err).Str("file", entry.Name()).Msg("skipping malformed domain file")
			continue
		}
		out = append(out, domain)
	}

	return out, nil
}

// AddDomain writes the domain file. Writing an identical domain is a no-op.
func (m *FileDomainManager) AddDomain(_ context.Context, domain models.Domain) error {
	if domain.ID == "" {
		return ErrEmptyDomainID
	}

	data, err := json.MarshalIndent(domain, "", "  ")
	if err != nil {
		return fmt.Errorf("encode domain: %w", err)
	}

	path := m.path(domain.ID)
	if existing, err := os.ReadFile(path); err == nil && string(existing) == string(data) {
		return nil
	}

	tmp, err := os.CreateTemp(m.dir, ".domain-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp domain file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write domain file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close domain file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publish domain file: %w", err)
	}

	return nil
}

// RemoveDomain deletes the domain file. Removing a missing domain is a no-op.
func (m *FileDomainManager) RemoveDomain(_ context.Context, id models.DomainID) error {
	if id == "" {
		return ErrEmptyDomainID
	}
	if err := os.Remove(m.path(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove domain file: %w", err)
	}
	return nil
}

func (m *FileDomainManager) path(id models.DomainID) string {
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(string(id))
	return filepath.Join(m.dir, name+domainFileExt)
}
