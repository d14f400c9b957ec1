package http

import (
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
)

// Handler serves the storage HTTP API: account registration and login plus
// the three authenticated manifest/record endpoints. Routes and middleware
// are wired up in [Handler.Init].
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
