package engine

import "time"

// Clock abstracts the wall clock so the trigger logic can be tested with
// scripted tick sequences instead of a real timer.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }
