package http

import (
	"sync"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/service"
)

type Handler struct {
	services *service.Services

	// closing ends long-lived signal streams on shutdown; the HTTP server
	// does not track hijacked connections.
	closing   chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		closing:  make(chan struct{}),
		logger:   logger,
	}
}

// Close disconnects every signal stream. It is safe to call more than once.
func (h *Handler) Close() {
	h.closeOnce.Do(func() {
		close(h.closing)
	})
}
