package handler

import (
	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/handler/http"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
