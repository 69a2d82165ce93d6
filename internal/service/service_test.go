// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/mock"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

var (
	testNow     = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	testSession = models.Session{Token: "h.p.s", Subject: "ana@b.com", DisplayName: "Ana"}
)

// newTestServices wires real cache and validator around a mocked backend.
func newTestServices(t *testing.T) (*Services, *mock.MockBackendAdapter, *cache.Client) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)

	queries, err := cache.New(config.DashboardCache{
		StaleTime:  5 * time.Minute,
		Retry:      1,
		RetryDelay: time.Millisecond,
		Size:       128,
	}, logger.Nop(), cache.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	svcs := NewServices(
		NewAppInfoService(config.DashboardApp{Version: "test"}, models.AppBuildInfo{}),
		backend, queries, validators.NewFormValidator(), logger.Nop(),
		WithClock(func() time.Time { return testNow }),
	)
	return svcs, backend, queries
}
