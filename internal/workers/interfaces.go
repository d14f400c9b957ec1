// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to return quickly, spawning goroutines internally for
// the actual work; Stop signals those goroutines to exit and blocks
// until they have terminated.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { /* start background processing */ }
//	func (w *MyWorker) Stop() { /* signal and wait */ }
type Worker interface {
	Run()
	Stop()
}
