package bench

import "github.com/pkg/errors"

var (
	ErrClockUnavailable = errors.New("bench: monotonic clock unavailable")
	ErrNoSubjects       = errors.New("bench: no containers to run")
)
