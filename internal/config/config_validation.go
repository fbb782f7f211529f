// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lin Onetwo

package config

// validate checks the final merged [StructuredConfig] and fills defaults
// for unset timing fields before the config is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.LoopInterval <= 0 {
		cfg.Sync.LoopInterval = DefaultLoopInterval
	}
	if cfg.Sync.StatusTimeout <= 0 {
		cfg.Sync.StatusTimeout = DefaultStatusTimeout
	}
	if cfg.Sync.RequestTimeout <= 0 {
		cfg.Sync.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.Name == "" {
		cfg.App.Name = DefaultAppName
	}

	return nil
}
