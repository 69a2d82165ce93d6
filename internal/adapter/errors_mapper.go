// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxMessageLen caps plain-text error bodies (HTML error pages and the like).
const maxMessageLen = 300

func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Op: op, Status: resp.StatusCode()}
	if msg := extractMessage(resp.Body()); msg != "" {
		apiErr.Message = msg
		apiErr.Structured = true
	} else {
		apiErr.Message = genericMessage(op, resp.StatusCode())
	}

	return apiErr
}

// extractMessage prefers {"message": ...}, then {"error": ...}, then a short
// plain-text body.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}

	if strings.HasPrefix(trimmed, "<") || len(trimmed) > maxMessageLen {
		return ""
	}

	return trimmed
}

func genericMessage(op string, status int) string {
	text := http.StatusText(status)
	if text == "" {
		text = "unexpected status"
	}
	return op + " failed: " + text
}
