// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

const residentsPath = "/resident"

// Flash texts for resident mutations.
const (
	msgResidentCreated     = "Morador registado com sucesso."
	msgResidentUpdated     = "Morador atualizado com sucesso."
	msgResidentInactivated = "Morador inativado com sucesso."
)

func (h *Handler) residents(w http.ResponseWriter, r *http.Request) {
	h.renderResidents(w, r, http.StatusOK, ui.ResidentsView{}, "")
}

func (h *Handler) renderResidents(w http.ResponseWriter, r *http.Request, status int, view ui.ResidentsView, failed string) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	view.Residents, err = h.services.ResidentService.List(r.Context(), s)
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		view.LoadErr = service.UserMessage(err, service.MsgLoadFailed)
	}

	page := h.page(r, "Moradores", view)
	if failed != "" {
		page.Flash.Err = failed
	}
	h.render(w, r, status, ui.PageResidents, page)
}

func (h *Handler) createResident(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgCreateResidentFailed)
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := models.NewResident{
		Name:        strings.TrimSpace(r.PostForm.Get("name")),
		OtherName:   strings.TrimSpace(r.PostForm.Get("otherName")),
		HouseNumber: strings.TrimSpace(r.PostForm.Get("houseNumber")),
		Contact:     strings.TrimSpace(r.PostForm.Get("contact")),
		Email:       strings.TrimSpace(r.PostForm.Get("email")),
		BI:          strings.TrimSpace(r.PostForm.Get("bi")),
	}

	if _, err = h.services.ResidentService.Create(r.Context(), s, form); err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Msg("resident not created")

		view := ui.ResidentsView{Form: form}
		if fe, ok := validators.AsFieldErrors(err); ok {
			view.Errors = fe
		}
		h.renderResidents(w, r, statusFromError(err), view, service.UserMessage(err, service.MsgCreateResidentFailed))
		return
	}

	redirectWithFlash(w, r, residentsPath, nil, msgResidentCreated, "")
}

func (h *Handler) editResident(w http.ResponseWriter, r *http.Request) {
	resident, err := h.findResident(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	h.render(w, r, http.StatusOK, ui.PageResidentEdit, h.page(r, "Editar morador", ui.ResidentEditView{
		Resident: resident,
		Update: models.ResidentUpdate{
			Name:    resident.Name,
			Contact: resident.Contact,
			BI:      resident.BI,
			Email:   resident.Email,
			Active:  resident.Active,
			Roles:   resident.Roles,
		},
	}))
}

func (h *Handler) updateResident(w http.ResponseWriter, r *http.Request) {
	resident, err := h.findResident(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgUpdateResidentFailed)
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	update := models.ResidentUpdate{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Contact: strings.TrimSpace(r.PostForm.Get("contact")),
		BI:      strings.TrimSpace(r.PostForm.Get("bi")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		Active:  r.PostForm.Get("active") == "true",
		Roles:   resident.Roles,
	}
	if len(update.Roles) == 0 {
		update.Roles = []string{models.RoleResident}
	}

	s, _ := currentSession(r)
	if err = h.services.ResidentService.Update(r.Context(), s, resident.ID, update); err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Int64("resident_id", resident.ID).Msg("resident not updated")

		view := ui.ResidentEditView{Resident: resident, Update: update}
		if fe, ok := validators.AsFieldErrors(err); ok {
			view.Errors = fe
		}
		page := h.page(r, "Editar morador", view)
		page.Flash.Err = service.UserMessage(err, service.MsgUpdateResidentFailed)
		h.render(w, r, statusFromError(err), ui.PageResidentEdit, page)
		return
	}

	redirectWithFlash(w, r, residentsPath, nil, msgResidentUpdated, "")
}

func (h *Handler) deleteResident(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgDeleteResidentFailed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgDeleteResidentFailed)
		return
	}

	outcome, err := h.services.ResidentService.Delete(r.Context(), s, id)
	if err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Int64("resident_id", id).Msg("resident not removed")
		redirectWithFlash(w, r, residentsPath, nil, "", service.UserMessage(err, service.MsgDeleteResidentFailed))
		return
	}

	redirectWithFlash(w, r, residentsPath, nil, outcome.Message, "")
}

func (h *Handler) inactivateResident(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgInactivateFailed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgInactivateFailed)
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := models.Inactivation{
		ID:                    id,
		ReasonForInactivation: strings.TrimSpace(r.PostForm.Get("reasonForInactivation")),
	}

	if err = h.services.ResidentService.Inactivate(r.Context(), s, req); err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		msg := service.UserMessage(err, service.MsgInactivateFailed)
		if fe, ok := validators.AsFieldErrors(err); ok && fe[validators.FieldReason] != "" {
			msg = fe[validators.FieldReason]
		}
		redirectWithFlash(w, r, residentsPath, nil, "", msg)
		return
	}

	redirectWithFlash(w, r, residentsPath, nil, msgResidentInactivated, "")
}

// findResident looks up the {id} resident in the cached resident list; the
// backend has no single-resident read.
func (h *Handler) findResident(r *http.Request) (models.Resident, error) {
	s, err := currentSession(r)
	if err != nil {
		return models.Resident{}, err
	}
	id, err := idParam(r)
	if err != nil {
		return models.Resident{}, err
	}

	residents, err := h.services.ResidentService.List(r.Context(), s)
	if err != nil {
		return models.Resident{}, err
	}
	for _, resident := range residents {
		if resident.ID == id {
			return resident, nil
		}
	}
	return models.Resident{}, adapter.ErrNotFound
}
