// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the change-feed server on behalf of the client.
//
// [ServerAdapter] implements the remote sides of the zone and topic caches
// and the account source of the domain registry over HTTP. HTTP status codes
// are mapped back to the sentinel errors of the models package by
// mapHTTPError, so callers keep using [errors.Is] across the wire.
//
// [SignalListener] keeps a websocket to the server open and forwards change
// signals to the client's sync job.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-share-cache/internal/cache"
	"github.com/MKhiriev/go-share-cache/internal/registry"
	"github.com/MKhiriev/go-share-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the change-feed server.
type ServerAdapter interface {
	cache.ZoneSource
	cache.RecordSource
	registry.AccountSource

	// SaveZone creates or renames a zone and returns it as stored.
	SaveZone(ctx context.Context, zone models.Zone) (models.Zone, error)

	// DeleteZone removes a zone with all its records.
	DeleteZone(ctx context.Context, zoneID models.ZoneID) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
