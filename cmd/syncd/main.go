package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mkhailov/go-storage-sync/internal/adapter"
	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncd")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, crypto.NewRecordCipher(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, log)

	// Токен живёт только в памяти адаптера, поэтому демон аутентифицируется
	// на каждом старте.
	creds := cfg.Credentials
	if creds.Register {
		err = services.AuthService.Register(ctx, creds.Login, creds.Password, creds.MasterSecret)
	} else {
		err = services.AuthService.Login(ctx, creds.Login, creds.Password, creds.MasterSecret)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("authenticate against storage server")
	}

	jobs := workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.Workers.SyncInterval, log))
	jobs.Run()

	<-ctx.Done()
	jobs.Stop()

	log.Info().Msg("syncd stopped gracefully")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
