// Package lifecycle holds timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart and OnStop hooks.
const DefaultTimeout = 15 * time.Second
