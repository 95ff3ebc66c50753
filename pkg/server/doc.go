// Package server serves the form page over HTTP and validates it live over a
// websocket. Each connection gets its own document and validator, driven by a
// single goroutine; input, submit and reset events are applied in order and
// every change is pushed back to the browser as a snapshot.
package server
