// Package lifecycle holds shared bounds for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, e.g. a database ping.
const DefaultTimeout = 10 * time.Second
