package utils

import "time"

// Clock returns the current instant. Services take one so tests can pin time.
type Clock = func() time.Time

// UTCNow is the production Clock.
func UTCNow() time.Time {
	return time.Now().UTC()
}
