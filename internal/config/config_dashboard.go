// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Route policies accepted by App.DefaultRoutePolicy.
const (
	RoutePolicyProtected = "protected"
	RoutePolicyPublic    = "public"
)

// EnvironmentProduction enables production-only behaviour such as Secure cookies.
const EnvironmentProduction = "production"

// Defaults applied by GetDashboardConfig to unset fields.
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultAdminRole          = "ROLE_ADMIN"
	DefaultServerTimeout      = 30 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultStaleTime          = 5 * time.Minute
	DefaultRetry              = 1
	DefaultRetryDelay         = time.Second
	DefaultCacheSize          = 1024
	DefaultCacheSweepInterval = time.Minute
	DefaultLogLevel           = "debug"
)

// DashboardApp holds the runtime application settings.
type DashboardApp struct {
	Production         bool
	Version            string
	LogLevel           string
	AdminRole          string
	DefaultRoutePolicy string
}

// DashboardAdapter holds the runtime backend client settings.
type DashboardAdapter struct {
	APIURL         string
	RequestTimeout time.Duration
}

// DashboardServer holds the runtime inbound server settings.
type DashboardServer struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// DashboardCache holds the runtime query cache settings.
type DashboardCache struct {
	StaleTime  time.Duration
	Retry      int
	RetryDelay time.Duration
	Size       int
}

// DashboardWorkers holds the runtime worker settings.
type DashboardWorkers struct {
	CacheSweepInterval time.Duration
}

// DashboardConfig is the validated runtime view of [StructuredConfig].
type DashboardConfig struct {
	App     DashboardApp
	Adapter DashboardAdapter
	Server  DashboardServer
	Cache   DashboardCache
	Workers DashboardWorkers
}

// GetDashboardConfig loads the structured config, applies defaults and
// validates the result.
func GetDashboardConfig() (*DashboardConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	dashboardCfg := NewDashboardConfig(cfg)
	return dashboardCfg, dashboardCfg.validate()
}

// NewDashboardConfig maps cfg to a [DashboardConfig], filling unset fields
// with defaults. The result is not validated.
func NewDashboardConfig(cfg *StructuredConfig) *DashboardConfig {
	return &DashboardConfig{
		App: DashboardApp{
			Production:         cfg.App.Environment == EnvironmentProduction,
			Version:            cfg.App.Version,
			LogLevel:           orDefault(cfg.App.LogLevel, DefaultLogLevel),
			AdminRole:          orDefault(cfg.App.AdminRole, DefaultAdminRole),
			DefaultRoutePolicy: orDefault(cfg.App.DefaultRoutePolicy, RoutePolicyProtected),
		},
		Adapter: DashboardAdapter{
			APIURL:         cfg.Adapter.APIURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Server: DashboardServer{
			HTTPAddress:     orDefault(cfg.Server.HTTPAddress, DefaultHTTPAddress),
			RequestTimeout:  orDefault(cfg.Server.RequestTimeout, DefaultServerTimeout),
			ShutdownTimeout: orDefault(cfg.Server.ShutdownTimeout, DefaultShutdownTimeout),
		},
		Cache: DashboardCache{
			StaleTime:  orDefault(cfg.Cache.StaleTime, DefaultStaleTime),
			Retry:      orDefault(cfg.Cache.Retry, DefaultRetry),
			RetryDelay: orDefault(cfg.Cache.RetryDelay, DefaultRetryDelay),
			Size:       orDefault(cfg.Cache.Size, DefaultCacheSize),
		},
		Workers: DashboardWorkers{
			CacheSweepInterval: orDefault(cfg.Workers.CacheSweepInterval, DefaultCacheSweepInterval),
		},
	}
}

func orDefault[T comparable](value, def T) T {
	var zero T
	if value == zero {
		return def
	}
	return value
}
