// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
)

// mockWorker records Run and Stop calls.
type mockWorker struct {
	runCount  int
	stopCount int
	stopErr   error
	order     *[]int
	id        int
}

func (m *mockWorker) Run() {
	m.runCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *mockWorker) Stop(context.Context) error {
	m.stopCount++
	return m.stopErr
}

func TestWorkers_Run_AllWorkersAreCalledInOrder(t *testing.T) {
	var order []int
	w1 := &mockWorker{id: 1, order: &order}
	w2 := &mockWorker{id: 2, order: &order}
	w3 := &mockWorker{id: 3, order: &order}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	assert.Equal(t, []int{1, 2, 3}, order)
	for _, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount)
	}
}

func TestWorkers_EmptyAndNil(t *testing.T) {
	for _, ws := range []*Workers{{workers: []Worker{}}, {}} {
		assert.NotPanics(t, ws.Run)
		assert.NoError(t, ws.Stop(context.Background()))
	}
}

func TestWorkers_Stop_CombinesErrors(t *testing.T) {
	errA := errors.New("a")
	errC := errors.New("c")
	a := &mockWorker{stopErr: errA}
	b := &mockWorker{}
	c := &mockWorker{stopErr: errC}

	err := (&Workers{workers: []Worker{a, b, c}}).Stop(context.Background())

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Len(t, multierr.Errors(err), 2)
	for _, w := range []*mockWorker{a, b, c} {
		assert.Equal(t, 1, w.stopCount)
	}
}

func TestNewWorkers_StartsJanitor(t *testing.T) {
	sweeper := newCountingSweeper()
	ws := NewWorkers(config.DashboardWorkers{CacheSweepInterval: time.Millisecond}, sweeper, logger.Nop())
	require.Len(t, ws.workers, 1)

	ws.Run()
	select {
	case <-sweeper.swept:
	case <-time.After(time.Second):
		t.Fatal("janitor never swept")
	}

	require.NoError(t, ws.Stop(context.Background()))
}
