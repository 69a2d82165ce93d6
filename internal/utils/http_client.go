// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent on every outbound backend request.
const UserAgent = "condo-dashboard"

// HTTPClient is a wrapper around resty.Client. Retries are disabled; the
// query cache owns the retry budget.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
