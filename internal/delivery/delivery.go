// Package delivery defines the outer surfaces that expose the marketplace.
package delivery

import "context"

// Delivery is a long-running server started by the process entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
