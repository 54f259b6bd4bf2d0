// Package delivery defines the contract shared by every long-running
// entry point of the process (HTTP server, background workers).
package delivery

import "context"

// Delivery is a serving component started from main. Serve blocks until the
// component stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
