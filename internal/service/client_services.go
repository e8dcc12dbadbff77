package service

import (
	"time"

	"github.com/MKhiriev/go-share-cache/internal/logger"
)

// ClientServices groups the client-side sync coordinator and its job.
type ClientServices struct {
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(deps ClientSyncDeps, syncInterval, debounce time.Duration, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(deps)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, syncInterval, debounce, log),
	}
}
