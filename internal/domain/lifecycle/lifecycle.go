// Package lifecycle holds shared timeouts for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as database
// pings and server drain.
const DefaultTimeout = 10 * time.Second
