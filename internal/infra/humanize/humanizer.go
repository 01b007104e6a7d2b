// Package humanize renders timestamps for people.
package humanize

import (
	"time"

	"surplus/internal/domain/service"

	"github.com/dustin/go-humanize"
)

type relativeHumanizer struct {
	now func() time.Time
}

// NewHumanizer returns a Humanizer relative to the wall clock.
func NewHumanizer() service.Humanizer {
	return &relativeHumanizer{now: time.Now}
}

// RelativeTime renders "3 hours from now" for future instants and "2 days ago" for past ones.
func (h *relativeHumanizer) RelativeTime(t time.Time) string {
	return humanize.RelTime(t, h.now(), "ago", "from now")
}
