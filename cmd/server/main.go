package main

import (
	"context"
	"fmt"

	"github.com/GIT-Saikat/Blog-Application/internal/config"
	"github.com/GIT-Saikat/Blog-Application/internal/handler"
	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/server"
	"github.com/GIT-Saikat/Blog-Application/internal/service"
	"github.com/GIT-Saikat/Blog-Application/internal/store"
	"github.com/GIT-Saikat/Blog-Application/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("backend", cfg.Storage.DB.Backend()).
		Dur("token_duration", cfg.App.TokenDuration).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return
	}

	srv.RunServer()
}
