package service

import (
	"github.com/mkhailov/go-storage-sync/internal/adapter"
	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	SyncEngine  SyncEngine
	Scheduler   Scheduler
	SyncJob     SyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	cipher := crypto.NewRecordCipher()
	ids := crypto.NewIDGenerator()
	scheduler := NewLogScheduler(logger)
	engine := NewSyncEngine(storages, serverAdapter, ids, scheduler, logger)

	return &ClientServices{
		AuthService: NewClientAuthService(storages, serverAdapter, cipher, logger),
		SyncEngine:  engine,
		Scheduler:   scheduler,
		SyncJob:     NewSyncJob(engine, scheduler, logger),
	}
}
