package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrNotListening is returned by Run when the listener has been closed already.
var ErrNotListening = errors.New("server is not listening")

// Server owns the listening socket and the accept loop of a Fiber app.
//
// Lifecycle: Listen binds (Idle -> Binding -> Serving), Run blocks in the
// accept loop until the context is cancelled (Interrupted) or the listener
// fails (Faulted). Either way the socket is closed when Run returns.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	ln     net.Listener
	closed bool
}

// New creates a server for app. Nothing is bound until Listen or Start.
func New(cfg Config, app *fiber.App, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, app: app, logger: logger}
}

// Listen binds the TCP listener on the configured address.
// It returns *AddressInUseError when the port is taken and *BindError otherwise.
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}
	if s.closed {
		return ErrNotListening
	}

	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return classifyBindError(addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen succeeds.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Start binds and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Run(ctx)
}

// Run serves connections on the bound listener until ctx is cancelled.
// Cancellation is a clean shutdown and returns nil. A listener fault is returned.
func (s *Server) Run(ctx context.Context) error {
	if s.ln == nil {
		return ErrNotListening
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(s.ln)
	}()

	select {
	case err := <-errCh:
		s.release()
		if err != nil {
			return fmt.Errorf("accept loop failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
		if err := s.app.Shutdown(); err != nil {
			s.logger.Warn("Shutdown reported an error", zap.Error(err))
		}
		// The app may not have registered the listener yet; closing it here
		// guarantees the accept loop returns and the port is released.
		s.release()
		if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("accept loop failed during shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) release() {
	if s.ln != nil {
		_ = s.ln.Close()
	}
	s.closed = true
}
