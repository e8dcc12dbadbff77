// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the server view before it is used at startup.
func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.PurgeInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validate checks the client view. The snapshot must live on disk so it
// survives restarts.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Registry.DomainsDir == "" {
		return ErrInvalidRegistryConfigs
	}

	return nil
}
