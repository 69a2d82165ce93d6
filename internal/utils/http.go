// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport packages: the
// outbound HTTP client, JSON responses, query parsing and id generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ParseOptionalInt parses a query or form value. An empty (or "all") value
// yields nil, meaning the filter is absent.
func ParseOptionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", raw, err)
	}

	return &v, nil
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// FormatOptionalInt renders a filter for display and cache keys: nil is "all".
func FormatOptionalInt(v *int) string {
	if v == nil {
		return "all"
	}
	return strconv.Itoa(*v)
}
