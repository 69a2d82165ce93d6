// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests served by the dashboard",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests served by the dashboard",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// knownRoots are the first path segments kept verbatim in metric labels.
var knownRoots = map[string]bool{
	"":             true,
	"login":        true,
	"logout":       true,
	"unauthorized": true,
	"resident":     true,
	"payment":      true,
	"debtors":      true,
	"history":      true,
	"admin":        true,
	"healthz":      true,
	"version":      true,
	"metrics":      true,
}

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		path := normalizePath(r.URL.Path)
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(m.Code)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(m.Duration.Seconds())
	})
}

// normalizePath bounds label cardinality: numeric segments become {id},
// static assets collapse to one label and unknown roots to "other".
//
//	/payment/42/proof → /payment/{id}/proof
func normalizePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case segments[0] == "static":
		return "/static/*"
	case !knownRoots[segments[0]]:
		return "other"
	}

	for i, s := range segments {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			segments[i] = "{id}"
		}
	}
	return "/" + strings.Join(segments, "/")
}
