// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/condo-dashboard/internal/gate"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ui.PageLogin, h.page(r, "Login", ui.LoginView{}))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := models.LoginRequest{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		view := ui.LoginView{Email: req.Email}
		if fe, ok := validators.AsFieldErrors(err); ok {
			view.Errors = fe
		} else {
			view.Error = service.UserMessage(err, service.MsgLoginFailed)
		}

		if errors.Is(err, service.ErrUnreadableToken) {
			log.Err(err).Msg("login rejected: unreadable token")
		} else {
			log.Info().Err(err).Str("email", req.Email).Msg("login failed")
		}

		h.render(w, r, statusFromError(err), ui.PageLogin, h.page(r, "Login", view))
		return
	}

	if err = h.sessions.Write(w, result.Token, result.Name); err != nil {
		log.Err(err).Msg("session not written")
		h.render(w, r, http.StatusBadGateway, ui.PageLogin,
			h.page(r, "Login", ui.LoginView{Email: req.Email, Error: service.MsgLoginFailed}))
		return
	}

	log.Info().Str("email", result.Email).Msg("user logged in")
	http.Redirect(w, r, gate.HomePath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
}
