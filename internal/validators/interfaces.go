// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks dashboard form input before anything is sent to
// the backend.
//
// Validate accepts the form model and, optionally, the names of the fields
// to check. Failures are reported as FieldErrors so a form can render one
// message per field.
package validators

import "context"

// Validator validates a form model.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
