package kernel

import "time"

// Clock is the time source of the lifecycle engines.
type Clock interface {
	Now() time.Time
}

// SystemClock returns UTC wall time truncated to microseconds, the precision
// PostgreSQL keeps for timestamps.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock always returns the same instant.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
