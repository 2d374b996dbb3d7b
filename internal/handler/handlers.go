package handler

import (
	"github.com/GIT-Saikat/Blog-Application/internal/config"
	"github.com/GIT-Saikat/Blog-Application/internal/handler/http"
	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
