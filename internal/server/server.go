package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/handler"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/workers"
)

type server struct {
	httpServer *httpServer
	handlers   *handler.Handlers
	workers    *workers.Workers

	logger *logger.Logger
}

// NewServer wires the HTTP server for handlers. bg runs for the lifetime of
// the server; it may be nil.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		handlers:   handlers,
		workers:    bg,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.workers.Start(ctx)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-ctx.Done()
	s.Shutdown()

	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown closes the signal streams first: Shutdown of net/http does not
// wait for hijacked websocket connections.
func (s *server) Shutdown() {
	s.handlers.HTTP.Close()
	s.httpServer.Shutdown()
	s.workers.Stop()
}
