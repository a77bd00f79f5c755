package server

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface address to bind. The default binds all interfaces.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the TCP port where the server will listen.
	Port int `mapstructure:"port" default:"5000"`
	// Root is the directory files are served from.
	// Empty means the directory containing the running executable.
	Root string `mapstructure:"root" default:""`
	// IndexFile is the landing page written into Root when absent.
	IndexFile string `mapstructure:"index_file" default:"index.html"`
}

// Addr returns the host:port bind address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ResolveRoot returns the absolute directory to serve.
func (c Config) ResolveRoot() (string, error) {
	if c.Root != "" {
		abs, err := filepath.Abs(c.Root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve root %q: %w", c.Root, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
