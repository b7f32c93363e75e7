package httpserver

import "errors"

var (
	// ErrStart is returned when the listener fails to start or serve.
	ErrStart = errors.New("httpserver: failed to start server")

	// ErrShutdown is returned when graceful shutdown does not complete in time.
	ErrShutdown = errors.New("httpserver: failed to shut down gracefully")
)
