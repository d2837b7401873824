// Package lifecycle defines timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and connection checks at startup.
const DefaultTimeout = 10 * time.Second
