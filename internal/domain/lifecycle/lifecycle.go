// Package lifecycle holds timing shared by server start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 15 * time.Second
