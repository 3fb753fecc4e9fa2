// Package lifecycle holds shared start/stop tuning for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery surface.
const DefaultTimeout = 10 * time.Second
