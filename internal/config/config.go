// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration shared by the server and
// the client. Nested groups take their env names from envPrefix, so
// Storage.DB.DSN is read from STORAGE_DB_DATABASE_URI.
type StructuredConfig struct {
	// App holds change-token signing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client snapshot settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of the change-feed server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Registry holds the local domain registry settings.
	Registry Registry `envPrefix:"REGISTRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs change tokens (HS256).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenTTL is how long a change token can be used incrementally. The
	// server keeps tombstones at least this long.
	// Env: APP_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the client log file; empty puts it next to the binary.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB is the server PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Local is the client SQLite snapshot database.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Local holds the client snapshot database settings.
type Local struct {
	// Path is the SQLite database file.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH" json:"path"`
}

// Server holds network and timeout settings of the change-feed server.
type Server struct {
	// HTTPAddress is the listen address, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the default number of records per change batch.
	// Env: SERVER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Adapter holds the client's outbound settings.
type Adapter struct {
	// HTTPAddress is the change-feed server address, "host:port" or a URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job intervals.
type Workers struct {
	// SyncInterval is how often the client fetches changes without a push.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// DebounceInterval coalesces change signals.
	// Env: WORKERS_DEBOUNCE_INTERVAL
	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL"`

	// PurgeInterval is how often the server drops expired tombstones.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`
}

// Registry holds domain registry settings.
type Registry struct {
	// DomainsDir holds one JSON file per local domain.
	// Env: REGISTRY_DOMAINS_DIR
	DomainsDir string `env:"DOMAINS_DIR" json:"domains_dir"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return new(layers).env().flags(args).file().merge()
}
