package ports

import "time"

// ClockPort supplies the current instant. Generators read time only through
// this port so date windows and timestamps can be frozen in tests.
type ClockPort interface {
	Now() time.Time
}
