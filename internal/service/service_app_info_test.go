// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/models"
)

func TestAppInfoService_Version(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.0", "2025-06-01", "abc123")

	tests := []struct {
		name string
		cfg  config.DashboardApp
		want string
	}{
		{name: "configured version wins", cfg: config.DashboardApp{Version: "2025.06"}, want: "2025.06"},
		{name: "falls back to build", cfg: config.DashboardApp{}, want: build.BuildVersion()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(tt.cfg, build)

			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
			assert.Equal(t, build, svc.GetBuildInfo(context.Background()))
		})
	}
}
