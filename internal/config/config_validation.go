// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The calseq Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// tool invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if !cfg.History.Disabled && cfg.History.DSN == "" {
		return ErrInvalidHistoryConfigs
	}

	if cfg.Run.Repeats < 1 {
		return ErrInvalidRunConfigs
	}

	return nil
}
