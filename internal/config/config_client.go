package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the storage server endpoint the client talks to.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DBPath is the path of the SQLite record database.
	DBPath string
	// StatePath is the path of the bbolt key-value state database.
	StatePath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync worker runs.
	SyncInterval time.Duration
}

// ClientCredentials holds what the sync daemon needs to authenticate and to
// derive the storage key. The master secret is used only locally.
type ClientCredentials struct {
	Login        string
	Password     string
	MasterSecret string
	// Register makes the daemon create the account on startup.
	Register bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Credentials contains the account credentials the daemon starts with.
	Credentials ClientCredentials
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DBPath:    cfg.Client.DBPath,
			StatePath: cfg.Client.StatePath,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Credentials: ClientCredentials{
			Login:        cfg.Client.Login,
			Password:     cfg.Client.Password,
			MasterSecret: cfg.Client.MasterSecret,
			Register:     cfg.Client.Register,
		},
	}

	return clientCfg, clientCfg.validate()
}
