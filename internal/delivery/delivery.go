// Package delivery contains the inbound surfaces of the service.
package delivery

import "context"

// Delivery is a long-running server started by the application graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
