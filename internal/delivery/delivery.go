// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running transport surface, started once at boot.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
