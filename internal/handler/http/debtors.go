// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/internal/utils"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
)

const debtorsPath = "/debtors"

// msgNotified is shown when the backend confirms without a message.
const msgNotified = "Notificação enviada com sucesso."

func (h *Handler) debtors(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	year, month := filters(r.URL.Query())
	view := ui.DebtorsView{
		Year:        year,
		Month:       month,
		Years:       ui.YearOptions(h.now()),
		Months:      ui.MonthOptions(),
		CurrentYear: h.now().Year(),
	}

	view.Debtors, err = h.services.PaymentService.Overdue(r.Context(), s, year, month)
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		view.LoadErr = service.UserMessage(err, service.MsgLoadFailed)
	}

	h.render(w, r, http.StatusOK, ui.PageDebtors, h.page(r, "Devedores", view))
}

func (h *Handler) debtor(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	debtor, err := h.services.PaymentService.OverdueByResident(r.Context(), s, id)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	h.render(w, r, http.StatusOK, ui.PageDebtor, h.page(r, "Detalhes do devedor", ui.DebtorDetailView{
		Debtor:      debtor,
		Years:       debtor.ByYear(),
		CurrentYear: h.now().Year(),
	}))
}

// payDebt registers a payment for the debtor in the URL and returns to the
// debtors list. Failures go back to the page the form was posted from.
func (h *Handler) payDebt(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgCreatePaymentFailed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgCreatePaymentFailed)
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	back := debtorsPath
	if r.PostForm.Get("from") == ui.DebtFromDetail {
		back = debtorsPath + "/" + strconv.FormatInt(id, 10)
	}

	values := r.PostForm
	values.Set(validators.FieldResidentID, strconv.FormatInt(id, 10))
	form, errs := parsePaymentForm(values)
	if len(errs) > 0 {
		redirectWithFlash(w, r, back, nil, "", errs.First())
		return
	}

	if _, err = h.services.PaymentService.Create(r.Context(), s, form); err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Int64("resident_id", id).Msg("debt payment not created")
		redirectWithFlash(w, r, back, nil, "", formMessage(err, service.MsgCreatePaymentFailed))
		return
	}

	redirectWithFlash(w, r, debtorsPath, nil, msgPaymentCreated, "")
}

func (h *Handler) notifyAll(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgNotifyFailed)
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	year, month := filters(r.PostForm)
	query := url.Values{}
	if year != nil {
		query.Set("year", utils.FormatOptionalInt(year))
	}
	if month != nil {
		query.Set("month", utils.FormatOptionalInt(month))
	}

	msg, err := h.services.PaymentService.NotifyOverdue(r.Context(), s, year, month)
	h.afterNotify(w, r, query, msg, err)
}

func (h *Handler) notifyOne(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgNotifyFailed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgNotifyFailed)
		return
	}

	msg, err := h.services.PaymentService.NotifyResident(r.Context(), s, id)
	h.afterNotify(w, r, nil, msg, err)
}

func (h *Handler) afterNotify(w http.ResponseWriter, r *http.Request, query url.Values, msg string, err error) {
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Msg("notification not sent")
		redirectWithFlash(w, r, debtorsPath, query, "", service.UserMessage(err, service.MsgNotifyFailed))
		return
	}

	if msg == "" {
		msg = msgNotified
	}
	redirectWithFlash(w, r, debtorsPath, query, msg, "")
}
