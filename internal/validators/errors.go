package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownOctagonSource = errors.New("unknown octagon source")
	ErrNegativeWarmUp       = errors.New("warm-up time cannot be negative")
	ErrNonPositiveExptime   = errors.New("exposure time must be positive")
	ErrNonPositiveNExp      = errors.New("exposure count must be at least 1")
	ErrBadNDFilterLabel     = errors.New("neutral-density filter label must be of form \"OD <number>\"")
)
