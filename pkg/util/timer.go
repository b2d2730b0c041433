package util

import "time"

/*
	usage:

	sw := StartStopwatch()
	// code to measure
	ns := sw.Stop()

*/

// Stopwatch measures elapsed time with the monotonic reading
// carried by time.Now. Only two clock reads are made: one on
// start and one on Stop.
type Stopwatch struct {
	start time.Time
	end   time.Time
}

func StartStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Stop reads the clock a second time and returns the elapsed
// nanoseconds. Calling Stop again returns the same value.
func (s *Stopwatch) Stop() int64 {
	if s.end.IsZero() {
		s.end = time.Now()
	}
	return s.Nanoseconds()
}

func (s *Stopwatch) Nanoseconds() int64 {
	if s.end.IsZero() {
		return 0
	}
	return s.end.Sub(s.start).Nanoseconds()
}

// HasMonotonic reports whether time.Now carries a monotonic
// clock reading. Round(0) strips it, so the two only differ
// when one is present.
func HasMonotonic() bool {
	t := time.Now()
	return t != t.Round(0)
}
