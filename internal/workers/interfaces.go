// Package workers provides the background workers of the application and the
// Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until ctx is cancelled or Stop is called. Stop blocks until those
// goroutines have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
