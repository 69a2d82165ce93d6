// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/models"
)

// AppInfoService reports what is running, for /healthz and the page footer.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo
}

// NewAppInfoService prefers the configured version and falls back to the
// version linked into the binary.
func NewAppInfoService(cfg config.DashboardApp, buildInfo models.AppBuildInfo) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{appVersion: version, buildInfo: buildInfo}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
