// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/internal/utils"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

const paymentsPath = "/payment"

// multipartMemory is how much of a proof upload is kept in memory before
// spilling to a temporary file.
const multipartMemory = 1 << 20

// Flash texts for payment mutations.
const (
	msgPaymentCreated = "Pagamento registado com sucesso."
	msgPaymentUpdated = "Pagamento atualizado com sucesso."
	msgProofUploaded  = "Comprovativo anexado com sucesso."
)

func (h *Handler) payments(w http.ResponseWriter, r *http.Request) {
	h.renderPayments(w, r, http.StatusOK, h.emptyPaymentForm(), nil, "")
}

func (h *Handler) emptyPaymentForm() models.PaymentForm {
	return models.PaymentForm{Year: h.now().Year(), PaymentMethod: models.DefaultPaymentMethod}
}

func (h *Handler) renderPayments(w http.ResponseWriter, r *http.Request, status int, form models.PaymentForm,
	errs validators.FieldErrors, failed string) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	year, month := filters(r.URL.Query())
	view := ui.PaymentsView{
		Year:          year,
		Month:         month,
		Years:         ui.YearOptions(h.now()),
		Months:        ui.MonthOptions(),
		BillingMonths: models.BillingMonths,
		Form:          form,
		Errors:        errs,
		Now:           h.now(),
	}

	var loadErr error
	if view.Payments, err = h.services.PaymentService.List(r.Context(), s, year, month); err != nil {
		loadErr = err
	}
	if view.Residents, err = h.services.ResidentService.List(r.Context(), s); err != nil {
		loadErr = errors.Join(loadErr, err)
	}
	if loadErr != nil {
		if h.sessionLost(w, r, loadErr) {
			return
		}
		view.LoadErr = service.UserMessage(loadErr, service.MsgLoadFailed)
	}

	page := h.page(r, "Pagamentos", view)
	if failed != "" {
		page.Flash.Err = failed
	}
	h.render(w, r, status, ui.PagePayments, page)
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgCreatePaymentFailed)
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form, errs := parsePaymentForm(r.PostForm)
	if len(errs) > 0 {
		h.renderPayments(w, r, http.StatusUnprocessableEntity, form, errs, service.MsgInvalidForm)
		return
	}

	if _, err = h.services.PaymentService.Create(r.Context(), s, form); err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Int64("resident_id", form.ResidentID).Msg("payment not created")

		fe, _ := validators.AsFieldErrors(err)
		h.renderPayments(w, r, statusFromError(err), form, fe, service.UserMessage(err, service.MsgCreatePaymentFailed))
		return
	}

	redirectWithFlash(w, r, paymentsPath, nil, msgPaymentCreated, "")
}

func (h *Handler) payment(w http.ResponseWriter, r *http.Request) {
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

	p, err := h.services.PaymentService.Get(r.Context(), s, id)
	if err != nil {
		h.renderError(w, r, err, service.MsgLoadFailed)
		return
	}

	h.render(w, r, http.StatusOK, ui.PagePayment, h.page(r, "Pagamento", ui.PaymentDetailView{
		Payment:  p,
		Update:   models.PaymentUpdate{MonthlyFee: p.MonthlyFee, PaymentMethod: orDefaultMethod(p.PaymentMethod)},
		Editable: p.Editable(h.now()),
		MaxProof: humanize.IBytes(validators.MaxProofFileBytes),
	}))
}

func (h *Handler) updatePayment(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgUpdatePaymentFailed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgUpdatePaymentFailed)
		return
	}
	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	target := paymentPath(id)
	fee, err := parseAmount(r.PostForm.Get("monthlyFee"))
	if err != nil {
		redirectWithFlash(w, r, target, nil, "", service.MsgInvalidForm)
		return
	}

	update := models.PaymentUpdate{
		MonthlyFee:    fee,
		PaymentMethod: orDefaultMethod(r.PostForm.Get("paymentMethod")),
	}

	if _, err = h.services.PaymentService.Update(r.Context(), s, id, update); err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Int64("payment_id", id).Msg("payment not updated")
		redirectWithFlash(w, r, target, nil, "", formMessage(err, service.MsgUpdatePaymentFailed))
		return
	}

	redirectWithFlash(w, r, target, nil, msgPaymentUpdated, "")
}

func (h *Handler) uploadProof(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgUploadProofFailed)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err, service.MsgUploadProofFailed)
		return
	}

	target := paymentPath(id)
	file, err := readProofFile(w, r)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Int64("payment_id", id).Msg("proof upload unreadable")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			redirectWithFlash(w, r, target, nil, "", validators.MsgProofTooLarge)
			return
		}
		redirectWithFlash(w, r, target, nil, "", service.MsgUploadProofFailed)
		return
	}

	if _, err = h.services.PaymentService.UploadProof(r.Context(), s, id, file); err != nil {
		if h.sessionLost(w, r, err) {
			return
		}
		logger.FromRequest(r).Info().Err(err).Int64("payment_id", id).Msg("proof not uploaded")
		redirectWithFlash(w, r, target, nil, "", formMessage(err, service.MsgUploadProofFailed))
		return
	}

	redirectWithFlash(w, r, target, nil, msgProofUploaded, "")
}

// readProofFile reads the "proofFile" part. A missing part yields an empty
// file, which the validator rejects.
func readProofFile(w http.ResponseWriter, r *http.Request) (models.ProofFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, validators.MaxProofFileBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return models.ProofFile{}, fmt.Errorf("parse multipart form: %w", err)
	}

	part, header, err := r.FormFile(validators.FieldProofFile)
	if errors.Is(err, http.ErrMissingFile) {
		return models.ProofFile{}, nil
	}
	if err != nil {
		return models.ProofFile{}, fmt.Errorf("open proof file: %w", err)
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		return models.ProofFile{}, fmt.Errorf("read proof file: %w", err)
	}

	return models.ProofFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func parsePaymentForm(values url.Values) (models.PaymentForm, validators.FieldErrors) {
	errs := validators.FieldErrors{}
	form := models.PaymentForm{
		Months:        values[validators.FieldMonths],
		PaymentMethod: orDefaultMethod(values.Get(validators.FieldPaymentMethod)),
	}

	residentID, err := strconv.ParseInt(strings.TrimSpace(values.Get(validators.FieldResidentID)), 10, 64)
	if err != nil || residentID <= 0 {
		errs[validators.FieldResidentID] = "O morador é obrigatório"
	}
	form.ResidentID = residentID

	year, err := strconv.Atoi(strings.TrimSpace(values.Get(validators.FieldYear)))
	if err != nil {
		errs[validators.FieldYear] = "O ano é obrigatório"
	}
	form.Year = year

	fee, err := parseAmount(values.Get(validators.FieldMonthlyFee))
	if err != nil {
		errs[validators.FieldMonthlyFee] = "A mensalidade deve ser um número"
	}
	form.MonthlyFee = fee

	return form, errs
}

// parseAmount accepts both "5000.50" and "5000,50".
func parseAmount(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return strconv.ParseFloat(raw, 64)
}

func orDefaultMethod(method string) string {
	if strings.TrimSpace(method) == "" {
		return models.DefaultPaymentMethod
	}
	return method
}

// formMessage prefers the first field message of a validation error.
func formMessage(err error, fallback string) string {
	if fe, ok := validators.AsFieldErrors(err); ok && len(fe) > 0 {
		return fe.First()
	}
	return service.UserMessage(err, fallback)
}

func paymentPath(id int64) string {
	return paymentsPath + "/" + strconv.FormatInt(id, 10)
}

// filters reads the optional ?year= and ?month= filters; malformed values
// are treated as absent.
func filters(q url.Values) (year, month *int) {
	year, _ = utils.ParseOptionalInt(q.Get("year"))
	month, _ = utils.ParseOptionalInt(q.Get("month"))
	if month != nil && (*month < 1 || *month > 12) {
		month = nil
	}
	return year, month
}
