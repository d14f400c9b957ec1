// Package server wires and runs the storage service's HTTP transport.
//
// It owns the server lifecycle: startup, OS signal handling, and
// graceful shutdown with a bounded drain period.
package server
