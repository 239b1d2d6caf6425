package schedule

import "errors"

// Schedule domain errors
var (
	ErrInvalidTimeLabel = errors.New("time value is not parseable")
	ErrNegativeGrace    = errors.New("grace minutes must not be negative")
)
