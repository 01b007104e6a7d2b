// Package lifecycle holds shared values for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived resources.
const DefaultTimeout = 10 * time.Second
