// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The merged config is shared by both binaries, so it stays permissive
// here: a machine running only the sync daemon has no reason to set the
// server DSN. Role-specific requirements are enforced by the view
// constructors ([GetClientConfig]) and by the components that consume the
// values.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DBPath == "" || cfg.Storage.StatePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Credentials.Login == "" || cfg.Credentials.Password == "" || cfg.Credentials.MasterSecret == "" {
		return ErrInvalidCredentialsConfigs
	}

	return nil
}
