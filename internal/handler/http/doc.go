// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the browser-facing transport of the dashboard.
//
// It wires the chi router, the cross-cutting middleware (trace id, access
// logging, metrics, response compression and the auth gate) and the page and
// form handlers that render screens and delegate to the service layer.
package http
