package config

import (
	"fmt"
	"time"
)

// ServerConfig is the change-feed server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     App
	DB      DB
	Server  Server
	Workers ServerWorkers
}

// ServerWorkers contains server background worker settings.
type ServerWorkers struct {
	// PurgeInterval is how often expired tombstones are removed.
	PurgeInterval time.Duration
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		DB:      cfg.Storage.DB,
		Server:  cfg.Server,
		Workers: ServerWorkers{PurgeInterval: cfg.Workers.PurgeInterval},
	}
}
