// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/condo-dashboard/internal/logger"
)

// CacheJanitor periodically evicts stale and invalidated query cache entries
// so memory follows the working set rather than every key ever fetched.
type CacheJanitor struct {
	cache    Sweeper
	interval time.Duration
	logger   *logger.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	started   chan struct{}
	stop      chan struct{}
	done      chan struct{}
}

func NewCacheJanitor(cache Sweeper, interval time.Duration, log *logger.Logger) *CacheJanitor {
	return &CacheJanitor{
		cache:    cache,
		interval: interval,
		logger:   log,
		started:  make(chan struct{}),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run starts the sweep loop. Calls after the first are no-ops.
func (j *CacheJanitor) Run() {
	j.startOnce.Do(func() {
		close(j.started)
		go j.loop()
	})
}

// Stop ends the sweep loop. A janitor that never ran stops immediately.
func (j *CacheJanitor) Stop(ctx context.Context) error {
	j.stopOnce.Do(func() { close(j.stop) })

	select {
	case <-j.started:
	default:
		return nil
	}

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *CacheJanitor) loop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("cache janitor started")
	for {
		select {
		case <-ticker.C:
			if n := j.cache.Sweep(); n > 0 {
				j.logger.Debug().Int("evicted", n).Msg("cache swept")
			}
		case <-j.stop:
			j.logger.Info().Msg("cache janitor stopped")
			return
		}
	}
}
