// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a dashboard listen address in format [host]:[port]
//	-api backend base URL
//	-c/-config json file path with configs
//	-env deployment environment ("production" enables Secure cookies)
//	-log-level minimum log level
//	-admin-role roles claim value required by admin routes
//	-default-route-policy policy for unlisted paths (protected|public)
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-api-timeout backend call timeout
//	-stale-time query cache staleness window
//	-cache-size maximum number of cached entries
//	-sweep-interval cache janitor interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var apiURL string
	var jsonConfigPath string
	var environment string
	var logLevel string
	var adminRole string
	var routePolicy string
	var requestTimeout time.Duration
	var apiTimeout time.Duration
	var staleTime time.Duration
	var cacheSize int
	var sweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&apiURL, "api", "", "Backend base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&environment, "env", "", "Deployment environment")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.StringVar(&adminRole, "admin-role", "", "Roles claim value required by admin routes")
	flag.StringVar(&routePolicy, "default-route-policy", "", "Policy for unlisted paths (protected|public)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&apiTimeout, "api-timeout", 0, "Backend call timeout (e.g., 10s)")
	flag.DurationVar(&staleTime, "stale-time", 0, "Query cache staleness window (e.g., 5m)")
	flag.IntVar(&cacheSize, "cache-size", 0, "Maximum number of cached entries")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Cache janitor interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment:        environment,
			LogLevel:           logLevel,
			AdminRole:          adminRole,
			DefaultRoutePolicy: routePolicy,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: apiTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			StaleTime: staleTime,
			Size:      cacheSize,
		},
		Workers: Workers{
			CacheSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
