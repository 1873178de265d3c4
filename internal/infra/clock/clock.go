// Package clock provides the time sources used to stamp entities.
package clock

import (
	"time"

	"outside/internal/domain/service"
)

type systemClock struct{}

// NewSystem returns a clock reading the wall time in UTC.
func NewSystem() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	t time.Time
}

// NewFixed returns a clock that always reports t.
func NewFixed(t time.Time) service.Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now() time.Time {
	return c.t
}
