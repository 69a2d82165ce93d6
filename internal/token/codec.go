// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token reads claims from the backend-issued bearer token.
//
// The dashboard is a claims reader, not a claims verifier: the signature is
// never checked here because the backend verifies every call it receives.
// Claims decoded by this package may only drive route and display decisions.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/condo-dashboard/models"
)

// RolesClaim is the payload field carrying the user's roles.
const RolesClaim = "roles"

var (
	// ErrDecode is wrapped by every failure of Decode and DecodeForGate.
	// Callers treat it as "no usable session".
	ErrDecode = errors.New("token decode error")

	// ErrMissingSubject means the payload has no non-empty "sub".
	ErrMissingSubject = errors.New("token has no subject")

	// ErrMissingExpiry means the payload has no "exp" where one is required.
	ErrMissingExpiry = errors.New("token has no expiry")

	// ErrSegments means raw is not made of exactly three dot-separated parts.
	ErrSegments = errors.New("token must have 3 segments")
)

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode extracts subject, roles and expiry from raw. Only "sub" is required.
// Header and signature segments are not read.
func Decode(raw string) (models.Claims, error) {
	mapClaims, err := payload(raw)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if sub == "" {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrDecode, ErrMissingSubject)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	claims := models.Claims{
		Subject: sub,
		Roles:   roles(mapClaims[RolesClaim]),
	}
	if exp != nil {
		claims.ExpiresAtEpochMs = exp.UnixMilli()
	}

	return claims, nil
}

// DecodeForGate is Decode with "exp" additionally required.
func DecodeForGate(raw string) (models.Claims, error) {
	claims, err := Decode(raw)
	if err != nil {
		return models.Claims{}, err
	}

	if !claims.HasExpiry() {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrDecode, ErrMissingExpiry)
	}

	return claims, nil
}

func payload(raw string) (jwt.MapClaims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, ErrSegments
	}

	data, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	mapClaims := jwt.MapClaims{}
	if err = json.Unmarshal(data, &mapClaims); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	return mapClaims, nil
}

// roles accepts a JSON array of strings or a single string. Anything else
// yields no roles.
func roles(v any) []string {
	switch value := v.(type) {
	case string:
		if value == "" {
			return nil
		}
		return []string{value}
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
