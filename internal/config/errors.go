package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidHistoryConfigs indicates invalid history store settings
	// (for example, an empty database path while history is enabled).
	ErrInvalidHistoryConfigs = errors.New("invalid history configuration")
	// ErrInvalidRunConfigs indicates invalid program settings
	// (for example, a negative repeat count).
	ErrInvalidRunConfigs = errors.New("invalid run configuration")
)
