package server

import (
	"errors"
	"fmt"
	"syscall"
)

// AddressInUseError reports that the configured port is already bound.
type AddressInUseError struct {
	Addr string
	Err  error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("address %s is already in use", e.Addr)
}

func (e *AddressInUseError) Unwrap() error { return e.Err }

// Hint is the operator remediation shown next to the error.
func (e *AddressInUseError) Hint() string {
	return "stop the other server on this port or set SERVER_PORT to a free port"
}

// BindError reports any other failure to set up the listening socket.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

func classifyBindError(addr string, err error) error {
	if errors.Is(err, syscall.EADDRINUSE) {
		return &AddressInUseError{Addr: addr, Err: err}
	}
	return &BindError{Addr: addr, Err: err}
}
