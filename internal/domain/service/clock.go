package service

import "time"

// Clock supplies the current time for entity timestamps.
type Clock interface {
	Now() time.Time
}
