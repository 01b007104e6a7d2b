package humanize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	h := &relativeHumanizer{now: func() time.Time { return now }}

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "hours ahead", at: now.Add(3 * time.Hour), want: "3 hours from now"},
		{name: "days ahead", at: now.Add(49 * time.Hour), want: "2 days from now"},
		{name: "minutes ago", at: now.Add(-10 * time.Minute), want: "10 minutes ago"},
		{name: "now", at: now, want: "now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.RelativeTime(tt.at))
		})
	}
}
