// Package delivery defines the contract every transport (HTTP, workers)
// fulfills so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport started by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
