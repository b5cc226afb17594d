// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: listening, serving until the caller's
// context is cancelled, and a graceful shutdown bounded by the configured
// timeout.
package server
