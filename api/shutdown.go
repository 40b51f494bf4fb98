// File: api/shutdown.go
// Package api defines the unified graceful shutdown contract.
// Author: jfcameron
// License: MIT

package api

// GracefulShutdown is implemented by components that stop their internal
// workers and release shared resources on Close. Close is idempotent.
type GracefulShutdown interface {
	// Close signals termination and blocks until all owned workers have
	// observed the signal and exited.
	Close() error
}
