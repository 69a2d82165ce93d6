// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package static embeds the stylesheet served under /static/.
package static

import (
	"embed"
	"net/http"
)

//go:embed css/*.css
var content embed.FS

// FileSystem returns the embedded files for http.FileServer. Paths look like
// css/app.css.
func FileSystem() http.FileSystem {
	return http.FS(content)
}
