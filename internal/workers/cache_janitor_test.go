// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/condo-dashboard/internal/logger"
)

type countingSweeper struct {
	calls atomic.Int64
	swept chan struct{}
}

func newCountingSweeper() *countingSweeper {
	return &countingSweeper{swept: make(chan struct{}, 1)}
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	select {
	case s.swept <- struct{}{}:
	default:
	}
	return 1
}

func TestCacheJanitor_SweepsUntilStopped(t *testing.T) {
	sweeper := newCountingSweeper()
	j := NewCacheJanitor(sweeper, time.Millisecond, logger.Nop())

	j.Run()
	for range 3 {
		select {
		case <-sweeper.swept:
		case <-time.After(time.Second):
			t.Fatal("janitor did not sweep")
		}
	}

	require.NoError(t, j.Stop(context.Background()))
	after := sweeper.calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, sweeper.calls.Load())
	assert.GreaterOrEqual(t, after, int64(3))
}

func TestCacheJanitor_StopWithoutRun(t *testing.T) {
	j := NewCacheJanitor(newCountingSweeper(), time.Millisecond, logger.Nop())
	assert.NoError(t, j.Stop(context.Background()))
}

func TestCacheJanitor_RunTwiceAndStopTwice(t *testing.T) {
	j := NewCacheJanitor(newCountingSweeper(), time.Hour, logger.Nop())

	j.Run()
	j.Run()

	assert.NoError(t, j.Stop(context.Background()))
	assert.NoError(t, j.Stop(context.Background()))
}

func TestCacheJanitor_StopHonoursContext(t *testing.T) {
	block := make(chan struct{})
	sweeper := &blockingSweeper{entered: make(chan struct{}), release: block}
	j := NewCacheJanitor(sweeper, time.Millisecond, logger.Nop())
	j.Run()
	<-sweeper.entered

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, j.Stop(ctx), context.DeadlineExceeded)
	close(block)
	assert.NoError(t, j.Stop(context.Background()))
}

type blockingSweeper struct {
	entered chan struct{}
	release chan struct{}
	once    atomic.Bool
}

func (s *blockingSweeper) Sweep() int {
	if s.once.CompareAndSwap(false, true) {
		close(s.entered)
	}
	<-s.release
	return 0
}
