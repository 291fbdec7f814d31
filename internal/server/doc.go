// Package server runs the backend's HTTP listener: startup, signal handling
// and graceful shutdown.
package server
