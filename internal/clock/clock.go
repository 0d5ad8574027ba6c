package clock

import "time"

// Clock abstracts the current time so date-stamped records and the sales
// report's notion of "today" can be tested.
type Clock interface {
	Now() time.Time
}

type system struct{}

// NewSystem returns the wall clock.
func NewSystem() Clock {
	return system{}
}

func (system) Now() time.Time {
	return time.Now()
}

type fixed time.Time

// NewFixed returns a clock frozen at t, for tests.
func NewFixed(t time.Time) Clock {
	return fixed(t)
}

func (f fixed) Now() time.Time {
	return time.Time(f)
}
