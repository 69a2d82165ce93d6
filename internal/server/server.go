// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
)

// ShutdownHook is run after the HTTP server stopped accepting requests.
type ShutdownHook func(ctx context.Context) error

// Option customises a server built by NewServer.
type Option func(*server)

// WithShutdownHook registers fn to run during Shutdown, in registration order.
func WithShutdownHook(fn ShutdownHook) Option {
	return func(s *server) {
		s.hooks = append(s.hooks, fn)
	}
}

type server struct {
	httpServer      *httpServer
	hooks           []ShutdownHook
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handler http.Handler, cfg config.DashboardServer, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddress
	}

	s := &server{
		httpServer:      newHTTPServer(handler, cfg),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

// Shutdown drains the HTTP server and runs every hook, even when an earlier
// step failed. All failures are returned together.
func (s *server) Shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	err := s.httpServer.Shutdown(ctx)
	for _, hook := range s.hooks {
		err = multierr.Append(err, hook(ctx))
	}
	return err
}

func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("http server: %w", err)
			s.logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}

	if shutdownErr := s.Shutdown(); shutdownErr != nil {
		s.logger.Error().Err(shutdownErr).Msg("error during shutdown")
		err = multierr.Append(err, shutdownErr)
	}

	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}
