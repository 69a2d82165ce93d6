// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/token"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

type authService struct {
	backend   adapter.BackendAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewAuthService(backend adapter.BackendAdapter, validator validators.Validator, log *logger.Logger) AuthService {
	return &authService{backend: backend, validator: validator, logger: log.WithComponent("auth")}
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, err
	}

	result, err := a.backend.Login(ctx, req)
	if err != nil {
		return models.LoginResult{}, err
	}

	if _, err = token.DecodeForGate(result.Token); err != nil {
		a.logger.Warn().Err(err).Str("email", req.Email).Msg("backend issued unreadable token")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrUnreadableToken, err)
	}

	if strings.TrimSpace(result.Name) == "" {
		result.Name = result.Email
	}

	return result, nil
}
