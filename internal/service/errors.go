// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEditWindowClosed is returned when a payment is older than the edit window.
	ErrEditWindowClosed = errors.New("payment can no longer be edited")

	// ErrUnreadableToken is returned by Login when the backend issued a token
	// whose claims cannot be read.
	ErrUnreadableToken = errors.New("login returned an unreadable token")
)
