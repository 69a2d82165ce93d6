// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/internal/utils"
	"github.com/MKhiriev/condo-dashboard/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	year := h.yearOrCurrent(r)
	overview := h.services.DashboardService.Overview(r.Context(), s, &year)

	h.render(w, r, http.StatusOK, ui.PageHome, h.page(r, "Dashboard", ui.HomeView{
		Overview: overview,
		Year:     year,
		Years:    ui.YearOptions(h.now()),
	}))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	year := h.yearOrCurrent(r)
	view := ui.HistoryView{
		Year:   year,
		Years:  ui.YearOptions(h.now()),
		Months: models.StatusMonths,
	}

	view.Rows, err = h.services.DashboardService.ResidentsPaymentStatus(r.Context(), s, &year)
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		view.LoadErr = service.UserMessage(err, service.MsgLoadFailed)
	}

	h.render(w, r, http.StatusOK, ui.PageHistory, h.page(r, "Histórico de pagamentos", view))
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, ui.PageUnauthorized, h.page(r, "Acesso negado", nil))
}

func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ui.PageAdmin, h.page(r, "Administração", nil))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, ui.PageError, h.page(r, "Página não encontrada", "Página não encontrada."))
}

// yearOrCurrent reads ?year=, defaulting to the current year.
func (h *Handler) yearOrCurrent(r *http.Request) int {
	year, err := utils.ParseOptionalInt(r.URL.Query().Get("year"))
	if err != nil || year == nil {
		return h.now().Year()
	}
	return *year
}
