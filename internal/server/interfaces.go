package server

// Server is the lifecycle of the backend listener.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives, then drains
	// in-flight requests.
	RunServer()

	Shutdown()
}
