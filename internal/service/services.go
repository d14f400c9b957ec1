package service

import (
	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/store"
)

type Services struct {
	AuthService    AuthService
	StorageService StorageService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.AccountRepository, cfg.App, logger),
		StorageService: NewStorageService(repos.ManifestStore, logger),
	}
}
