// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"go.uber.org/multierr"

	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the process workers: currently the cache janitor.
func NewWorkers(cfg config.DashboardWorkers, cache Sweeper, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewCacheJanitor(cache, cfg.CacheSweepInterval, log.WithComponent("cache-janitor")),
	}}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker, in start order, and returns all failures.
func (w *Workers) Stop(ctx context.Context) error {
	var err error
	for _, worker := range w.workers {
		err = multierr.Append(err, worker.Stop(ctx))
	}
	return err
}
