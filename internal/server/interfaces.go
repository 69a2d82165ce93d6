// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the dashboard server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown stops accepting requests, drains in-flight ones and runs the
// shutdown hooks.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
