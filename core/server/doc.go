// Package server binds the development server and runs its accept loop.
//
// # Configuration
//
// Config holds the bind host, port and the root directory. The defaults bind
// 0.0.0.0:5000 and serve the directory containing the executable.
//
// # Lifecycle
//
//	srv := server.New(cfg.Server, server.NewApp(log, requests), log)
//	if err := srv.Listen(); err != nil {
//	    // *server.AddressInUseError or *server.BindError
//	}
//	err := srv.Run(ctx) // nil after ctx is cancelled
//
// # Middleware Chain
//
// NewApp installs, in order: RayID, access logging, cross-origin headers and
// request serialization. ErrorHandler renders every handler error as plain text
// without touching headers set earlier in the chain.
package server
