// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the dashboard's background workers and a Workers
// aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background job owned by the process.
//
// Run must not block: implementations start their own goroutine. Stop asks
// the worker to finish and waits until it has, or until ctx is done.
type Worker interface {
	Run()
	Stop(ctx context.Context) error
}

// Sweeper is the part of the query cache the janitor needs.
type Sweeper interface {
	Sweep() int
}
