// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the dashboard's HTTP server.
//
// It owns the process lifecycle: startup, SIGINT/SIGTERM/SIGQUIT handling and
// a bounded graceful shutdown that also stops registered background work.
package server
