// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/condo-dashboard/internal/gate"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/session"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
)

func newBareHandler(t *testing.T) *Handler {
	t.Helper()
	renderer, err := ui.NewRenderer()
	require.NoError(t, err)

	store := session.NewStore(false)
	g := gate.New(gate.DefaultRoutes(false), store, testAdminRole, logger.Nop())
	return NewHandler(newTestServices(), g, store, renderer, testAdminRole, logger.Nop())
}

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	require.NotNil(t, newBareHandler(t))
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	h := newBareHandler(t)

	assert.NotNil(t, h.services)
	assert.NotNil(t, h.gate)
	assert.NotNil(t, h.sessions)
	assert.NotNil(t, h.renderer)
	assert.NotNil(t, h.traceIDs)
	assert.Equal(t, testAdminRole, h.adminRole)
}

func TestNewHandler_WithClock(t *testing.T) {
	renderer, err := ui.NewRenderer()
	require.NoError(t, err)

	h := NewHandler(newTestServices(), nil, nil, renderer, testAdminRole, logger.Nop(),
		WithClock(func() time.Time { return testNow }))

	assert.Equal(t, testNow, h.now())
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	assert.NotSame(t, newBareHandler(t), newBareHandler(t))
}
