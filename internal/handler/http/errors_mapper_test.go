// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	apiErr := func(status int) error {
		return &adapter.APIError{Op: adapter.OpListPayments, Status: status, Message: http.StatusText(status)}
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "field errors", err: validators.FieldErrors{"email": "Email inválido"}, want: http.StatusUnprocessableEntity},
		{name: "wrapped field errors", err: fmt.Errorf("create: %w", validators.FieldErrors{"bi": "BI inválido"}), want: http.StatusUnprocessableEntity},
		{name: "network", err: &adapter.NetworkError{Op: adapter.OpLogin, Err: errors.New("refused")}, want: http.StatusBadGateway},
		{name: "invalid id", err: ErrInvalidID, want: http.StatusNotFound},
		{name: "no session", err: ErrNoSession, want: http.StatusUnauthorized},
		{name: "invalid credentials", err: adapter.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "backend 400", err: apiErr(http.StatusBadRequest), want: http.StatusBadRequest},
		{name: "backend 403", err: apiErr(http.StatusForbidden), want: http.StatusForbidden},
		{name: "backend 404", err: apiErr(http.StatusNotFound), want: http.StatusNotFound},
		{name: "backend 409", err: apiErr(http.StatusConflict), want: http.StatusConflict},
		{name: "backend 500", err: apiErr(http.StatusInternalServerError), want: http.StatusBadGateway},
		{name: "backend 418 unmapped", err: apiErr(http.StatusTeapot), want: http.StatusInternalServerError},
		{name: "precondition", err: fmt.Errorf("query: %w", cache.ErrPreconditionNotMet), want: http.StatusUnauthorized},
		{name: "edit window", err: service.ErrEditWindowClosed, want: http.StatusConflict},
		{name: "unreadable token", err: service.ErrUnreadableToken, want: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
