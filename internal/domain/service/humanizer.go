package service

import "time"

// Humanizer renders timestamps relative to the current time, e.g. "3 hours from now".
type Humanizer interface {
	RelativeTime(t time.Time) string
}
