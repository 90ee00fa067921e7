// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport serving the application, e.g. the HTTP
// server. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
