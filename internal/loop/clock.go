package loop

import "time"

// NewDeltaClock returns a function reporting the seconds elapsed since its
// own previous call. The first call returns 0. now is injectable so tests
// can drive the clock.
func NewDeltaClock(now func() time.Time) func() float64 {
	var last time.Time
	return func() float64 {
		t := now()
		if last.IsZero() {
			last = t
			return 0
		}
		delta := t.Sub(last).Seconds()
		last = t
		return delta
	}
}
