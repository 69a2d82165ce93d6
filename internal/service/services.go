// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
)

type Services struct {
	AppInfoService   AppInfoService
	AuthService      AuthService
	DashboardService DashboardService
	PaymentService   PaymentService
	ResidentService  ResidentService
}

// Option customises the services built by NewServices.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now for the payment edit window.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func NewServices(appInfo AppInfoService, backend adapter.BackendAdapter, queries *cache.Client, validator validators.Validator,
	log *logger.Logger, opts ...Option) *Services {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Services{
		AppInfoService:   appInfo,
		AuthService:      NewAuthService(backend, validator, log),
		DashboardService: NewDashboardService(backend, queries),
		PaymentService:   NewPaymentService(backend, queries, validator, log, o.now),
		ResidentService:  NewResidentService(backend, queries, validator, log),
	}
}
