package server

import "context"

// Server is the lifecycle of the fake hospital API process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully. It returns early with an error when the listener fails,
	// for example because the port is taken.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx is done.
	Shutdown(ctx context.Context) error
}
