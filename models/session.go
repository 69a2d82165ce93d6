// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Claims is the subset of the bearer token payload the dashboard reads.
//
// The values are taken from the token without signature verification: the
// dashboard is a claims reader, the backend is the claims verifier. Claims
// must only drive UI and route decisions, never authorization of data.
type Claims struct {
	// Subject is the "sub" claim, the e-mail of the logged-in user.
	Subject string

	// Roles is the optional "roles" claim (e.g. ROLE_ADMIN, ROLE_RESIDENT).
	Roles []string

	// ExpiresAtEpochMs is the "exp" claim converted to Unix milliseconds.
	// Zero when the token carries no expiry.
	ExpiresAtEpochMs int64
}

// HasRole reports whether role is present in the Roles claim.
func (c Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasExpiry reports whether the token carried an "exp" claim.
func (c Claims) HasExpiry() bool {
	return c.ExpiresAtEpochMs != 0
}

// Expired reports whether the token is expired at now. A token whose expiry
// equals now is already expired.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAtEpochMs <= now.UnixMilli()
}

// Session is the dashboard's view of a logged-in user. Only Token and
// DisplayName are persisted (as the "token" and "userName" cookies); the
// remaining fields are re-derived from the token on every read.
type Session struct {
	// Token is the opaque bearer credential issued by the backend.
	Token string

	// Subject is the e-mail derived from the token "sub" claim.
	Subject string

	// DisplayName is the user name returned by the login call.
	DisplayName string

	// Roles are derived from the token "roles" claim.
	Roles []string

	// ExpiresAtEpochMs is derived from the token "exp" claim.
	ExpiresAtEpochMs int64
}

// IsAdmin reports whether the session carries adminRole.
func (s Session) IsAdmin(adminRole string) bool {
	return slices.Contains(s.Roles, adminRole)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the backend response to a successful login.
type LoginResult struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
