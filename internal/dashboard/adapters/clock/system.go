package clock

import (
	"time"

	"insights-api/internal/dashboard/core/ports"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

var _ ports.ClockPort = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
