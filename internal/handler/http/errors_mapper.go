// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidID: http.StatusNotFound,
	ErrNoSession: http.StatusUnauthorized,

	adapter.ErrInvalidCredentials:  http.StatusUnauthorized,
	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnauthorized:        http.StatusUnauthorized,
	adapter.ErrForbidden:           http.StatusForbidden,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,

	cache.ErrPreconditionNotMet:   http.StatusUnauthorized,
	service.ErrEditWindowClosed:   http.StatusConflict,
	service.ErrUnreadableToken:    http.StatusBadGateway,
	validators.ErrUnsupportedType: http.StatusInternalServerError,
}

// statusFromError picks the status of the page rendered for err.
func statusFromError(err error) int {
	if _, ok := validators.AsFieldErrors(err); ok {
		return http.StatusUnprocessableEntity
	}

	var netErr *adapter.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	return http.StatusInternalServerError
}
