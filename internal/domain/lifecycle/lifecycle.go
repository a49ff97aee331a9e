// Package lifecycle holds shared constants for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks such as the database ping.
const DefaultTimeout = 15 * time.Second
