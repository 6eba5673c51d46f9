package ports

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

var _ Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
