// Package http exposes the prediction API over HTTP.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps the HTTP server and its middleware chain.
type Server struct {
	server *http.Server
	config ServerConfig
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port           int
	Timeout        time.Duration
	MaxRequestSize int64
	AllowedOrigins []string
}

// DefaultServerConfig returns the settings used when the config file leaves
// them unset.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:           8080,
		Timeout:        30 * time.Second,
		MaxRequestSize: 1 << 20,
		AllowedOrigins: []string{"*"},
	}
}

// NewServer builds the server with all handlers and middleware registered.
func NewServer(config ServerConfig) *Server {
	mux := http.NewServeMux()
	RegisterHandlers(mux)

	chain := Chain(
		RecoveryMiddleware,
		LoggerMiddleware,
		SecurityHeadersMiddleware,
		CORSMiddleware(config.AllowedOrigins),
		RequestSizeMiddleware(config.MaxRequestSize),
	)
	handler := chain(mux)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", config.Port),
			Handler:      handler,
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
			IdleTimeout:  120 * time.Second,
		},
		config: config,
	}
}

// Start runs the server until Stop is called.
func (s *Server) Start() error {
	zap.L().Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zap.L().Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}

// Addr returns the server listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}
