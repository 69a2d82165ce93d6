// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned when the {id} route parameter is not a
	// positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrNoSession is returned when a gated handler runs without a session in
	// the request context.
	ErrNoSession = errors.New("no session in request context")
)
