package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the change-feed server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// Path is the SQLite snapshot file.
	Path string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the client fetches changes on its own.
	SyncInterval time.Duration
	// DebounceInterval coalesces domain and push signals.
	DebounceInterval time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Workers  ClientWorkers
	Registry Registry
	// LogFile is the rotating client log file.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{Path: cfg.Storage.Local.Path},
		Workers: ClientWorkers{
			SyncInterval:     cfg.Workers.SyncInterval,
			DebounceInterval: cfg.Workers.DebounceInterval,
		},
		Registry: cfg.Registry,
		LogFile:  cfg.App.LogFile,
	}
}
