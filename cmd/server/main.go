package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/handler"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/server"
	"github.com/MKhiriev/go-share-cache/internal/service"
	"github.com/MKhiriev/go-share-cache/internal/store"
	"github.com/MKhiriev/go-share-cache/internal/workers"
	"github.com/MKhiriev/go-share-cache/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("share-cache-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version()
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Dur("token_ttl", cfg.App.TokenTTL).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer services.Close()

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services.Purge), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
