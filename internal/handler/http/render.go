// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/gate"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/session"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/models"
)

// Flash query parameters set by redirects after a form post.
const (
	flashOKParam  = "ok"
	flashErrParam = "err"
)

func (h *Handler) page(r *http.Request, title string, content any) ui.Page {
	s, _ := session.FromContext(r.Context())
	q := r.URL.Query()

	return ui.Page{
		Title:   title,
		User:    s.DisplayName,
		Admin:   s.IsAdmin(h.adminRole),
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
		Flash:   ui.Flash{OK: q.Get(flashOKParam), Err: q.Get(flashErrParam)},
		Content: content,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, page ui.Page) {
	if err := h.renderer.Render(w, status, name, page); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError shows err on the error page with a matching status.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if h.sessionLost(w, r, err) {
		return
	}
	h.render(w, r, statusFromError(err), ui.PageError, h.page(r, "Erro", service.UserMessage(err, fallback)))
}

// sessionLost redirects to the login page when err means the request has
// no usable token. It reports whether it wrote a response.
func (h *Handler) sessionLost(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, cache.ErrPreconditionNotMet) && !errors.Is(err, ErrNoSession) {
		return false
	}
	h.sessions.Clear(w)
	http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
	return true
}

// redirectWithFlash sends the browser to target after a form post, carrying
// a one-shot notice.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target string, query url.Values, ok, failed string) {
	if query == nil {
		query = url.Values{}
	}
	if ok != "" {
		query.Set(flashOKParam, ok)
	}
	if failed != "" {
		query.Set(flashErrParam, failed)
	}
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func currentSession(r *http.Request) (models.Session, error) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		return models.Session{}, ErrNoSession
	}
	return s, nil
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
