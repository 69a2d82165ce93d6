// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/condo-dashboard/internal/gate"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/session"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/internal/utils"
)

type Handler struct {
	services  *service.Services
	gate      *gate.Gate
	sessions  *session.Store
	renderer  *ui.Renderer
	adminRole string
	traceIDs  *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// Option customises a Handler.
type Option func(*Handler)

// WithClock replaces time.Now for default filters and the edit window shown
// on payment pages.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func NewHandler(services *service.Services, g *gate.Gate, sessions *session.Store, renderer *ui.Renderer,
	adminRole string, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:  services,
		gate:      g,
		sessions:  sessions,
		renderer:  renderer,
		adminRole: adminRole,
		traceIDs:  utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
