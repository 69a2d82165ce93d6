// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Environment        string `json:"environment"`
		Version            string `json:"version"`
		LogLevel           string `json:"log_level"`
		AdminRole          string `json:"admin_role"`
		DefaultRoutePolicy string `json:"default_route_policy"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Cache struct {
		StaleTime  Duration `json:"stale_time"`
		Retry      int      `json:"retry"`
		RetryDelay Duration `json:"retry_delay"`
		Size       int      `json:"size"`
	} `json:"cache,omitempty"`

	Workers struct {
		CacheSweepInterval Duration `json:"cache_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment:        jsonCfg.App.Environment,
			Version:            jsonCfg.App.Version,
			LogLevel:           jsonCfg.App.LogLevel,
			AdminRole:          jsonCfg.App.AdminRole,
			DefaultRoutePolicy: jsonCfg.App.DefaultRoutePolicy,
		},
		Adapter: Adapter{
			APIURL:         jsonCfg.Adapter.APIURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Cache: Cache{
			StaleTime:  time.Duration(jsonCfg.Cache.StaleTime),
			Retry:      jsonCfg.Cache.Retry,
			RetryDelay: time.Duration(jsonCfg.Cache.RetryDelay),
			Size:       jsonCfg.Cache.Size,
		},
		Workers: Workers{
			CacheSweepInterval: time.Duration(jsonCfg.Workers.CacheSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
