// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged [StructuredConfig] has no values that are
// malformed regardless of defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Cache.Retry < 0 || cfg.Cache.Size < 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func (cfg *DashboardConfig) validate() error {
	if cfg.Adapter.APIURL == "" {
		return fmt.Errorf("%w: backend API URL is required", ErrInvalidAdapterConfigs)
	}

	u, err := url.Parse(cfg.Adapter.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend API URL %q is not absolute", ErrInvalidAdapterConfigs, cfg.Adapter.APIURL)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	switch cfg.App.DefaultRoutePolicy {
	case RoutePolicyProtected, RoutePolicyPublic:
	default:
		return fmt.Errorf("%w: unknown default route policy %q", ErrInvalidAppConfigs, cfg.App.DefaultRoutePolicy)
	}

	if cfg.Cache.StaleTime < 0 || cfg.Cache.Retry < 0 || cfg.Cache.RetryDelay <= 0 || cfg.Cache.Size <= 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Workers.CacheSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
