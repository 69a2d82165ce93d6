// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dashboard. It is populated by merging values from environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: environment, version and access policy.
	App App `envPrefix:"APP_"`

	// Adapter holds the location of the condominium REST backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listening address and timeouts of the dashboard itself.
	Server Server `envPrefix:"SERVER_"`

	// Cache holds the query cache parameters.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Environment is the deployment environment. "production" turns on the
	// Secure attribute of the session cookies.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the semantic version reported by /healthz.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// AdminRole is the roles claim value that unlocks admin routes.
	// Env: APP_ADMIN_ROLE
	AdminRole string `env:"ADMIN_ROLE"`

	// DefaultRoutePolicy is applied to paths absent from the route table:
	// "protected" or "public".
	// Env: APP_DEFAULT_ROUTE_POLICY
	DefaultRoutePolicy string `env:"DEFAULT_ROUTE_POLICY"`
}

// Adapter holds settings of the outbound backend client.
type Adapter struct {
	// APIURL is the base URL of the condominium REST backend
	// (e.g. "https://api.condo.example/api").
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single backend call. Zero keeps the transport
	// default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the "host:port" the dashboard listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Cache holds query cache settings.
type Cache struct {
	// StaleTime is how long a fetched result is served without re-fetching.
	// Env: CACHE_STALE_TIME
	StaleTime time.Duration `env:"STALE_TIME"`

	// Retry is the number of extra attempts after a failed fetch.
	// Env: CACHE_RETRY
	Retry int `env:"RETRY"`

	// RetryDelay is the pause before a retry.
	// Env: CACHE_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// Size is the maximum number of cached entries.
	// Env: CACHE_SIZE
	Size int `env:"SIZE"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// CacheSweepInterval is how often stale cache entries are evicted.
	// Env: WORKERS_CACHE_SWEEP_INTERVAL
	CacheSweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
