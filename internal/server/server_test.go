// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
)

func testConfig(addr string) config.DashboardServer {
	return config.DashboardServer{
		HTTPAddress:     addr,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		handler http.Handler
		addr    string
		wantErr error
	}{
		{name: "valid", handler: okHandler, addr: "127.0.0.1:0"},
		{name: "nil handler", handler: nil, addr: "127.0.0.1:0", wantErr: errNoHandler},
		{name: "empty address", handler: okHandler, addr: "", wantErr: errNoAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handler, testConfig(tt.addr), logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	s, err := NewServer(okHandler, testConfig("127.0.0.1:0"), logger.Nop())
	require.NoError(t, err)

	srv := s.(*server).httpServer.server
	assert.Equal(t, "127.0.0.1:0", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, time.Second, srv.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)
}

func TestRun_StopsOnContextAndRunsHooksInOrder(t *testing.T) {
	var order []string
	hook := func(name string) Option {
		return WithShutdownHook(func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	s, err := NewServer(okHandler, testConfig("127.0.0.1:0"), logger.Nop(), hook("janitor"), hook("flush"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.(*server).run(ctx))
	assert.Equal(t, []string{"janitor", "flush"}, order)
}

func TestRun_ListenFailureStillRunsHooks(t *testing.T) {
	hookCalled := false
	s, err := NewServer(okHandler, testConfig("no-port-here"), logger.Nop(),
		WithShutdownHook(func(context.Context) error {
			hookCalled = true
			return nil
		}))
	require.NoError(t, err)

	err = s.(*server).run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
	assert.True(t, hookCalled)
}

func TestShutdown_CombinesHookErrors(t *testing.T) {
	errJanitor := errors.New("janitor did not stop")
	errOther := errors.New("other failure")

	s, err := NewServer(okHandler, testConfig("127.0.0.1:0"), logger.Nop(),
		WithShutdownHook(func(context.Context) error { return errJanitor }),
		WithShutdownHook(func(context.Context) error { return nil }),
		WithShutdownHook(func(context.Context) error { return errOther }),
	)
	require.NoError(t, err)

	err = s.Shutdown()

	assert.ErrorIs(t, err, errJanitor)
	assert.ErrorIs(t, err, errOther)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestShutdown_HookSeesDeadline(t *testing.T) {
	var hasDeadline bool
	s, err := NewServer(okHandler, testConfig("127.0.0.1:0"), logger.Nop(),
		WithShutdownHook(func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}))
	require.NoError(t, err)

	require.NoError(t, s.Shutdown())
	assert.True(t, hasDeadline)
}
