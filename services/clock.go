package services

import "time"

// Clock abstracts time.Now so the reminder engine can be tested against a
// fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
