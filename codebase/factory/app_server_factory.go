package factory

import "context"

// AppServerFactory factory for server abstraction
type AppServerFactory interface {
	Serve()
	Shutdown(ctx context.Context)
	Name() string
}
