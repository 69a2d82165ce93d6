// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/utils"
	"github.com/MKhiriev/condo-dashboard/models"
)

// Operation names used in errors, logs and metrics.
const (
	OpLogin                  = "login"
	OpListPayments           = "list payments"
	OpListOverdue            = "list overdue payments"
	OpOverdueByResident      = "get overdue payment by resident"
	OpPaymentByID            = "get payment"
	OpCreatePayment          = "create payment"
	OpUpdatePayment          = "update payment"
	OpUploadProof            = "upload proof"
	OpNotifyOverdue          = "notify overdue residents"
	OpNotifyResident         = "notify resident"
	OpTotalPaid              = "get total paid"
	OpTotalDebt              = "get total debt"
	OpDebtorsSummary         = "get debtors summary"
	OpListResidents          = "list residents"
	OpCreateResident         = "create resident"
	OpResidentsSummary       = "get residents summary"
	OpUpdateResident         = "update resident"
	OpDeleteResident         = "delete resident"
	OpInactivateResident     = "inactivate resident"
	OpResidentsPaymentStatus = "get residents payment status"
)

const proofFieldName = "proofFile"

var (
	backendCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_backend_calls_total",
		Help: "Backend calls by operation and outcome",
	}, []string{"operation", "outcome"})

	backendCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_backend_call_duration_seconds",
		Help:    "Backend call latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the resty implementation of
// [BackendAdapter] for the backend at adapterCfg.APIURL.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewHTTPBackendAdapter(adapterCfg config.DashboardAdapter, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpBackendAdapter{client: client, logger: log.WithComponent("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)

	resp, err := h.send(OpLogin, r, resty.MethodPost, "/auth/login")
	if err != nil {
		if apiErr := asAPIError(err); apiErr != nil && apiErr.Is(ErrUnauthorized) {
			return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.LoginResult{}, err
	}

	return decode[models.LoginResult](OpLogin, resp)
}

func (h *httpBackendAdapter) ListPayments(ctx context.Context, token string, year, month *int) ([]models.Payment, error) {
	r := withOptionalInts(h.authed(ctx, token), intParam{"year", year}, intParam{"month", month})

	resp, err := h.send(OpListPayments, r, resty.MethodGet, "/payments/all")
	if err != nil {
		return nil, err
	}

	return decode[[]models.Payment](OpListPayments, resp)
}

func (h *httpBackendAdapter) ListOverdue(ctx context.Context, token string, year, month *int) ([]models.OverduePayment, error) {
	r := withOptionalInts(h.authed(ctx, token), intParam{"year", year}, intParam{"month", month})

	resp, err := h.send(OpListOverdue, r, resty.MethodGet, "/payments/overdue")
	if err != nil {
		return nil, err
	}

	return decode[[]models.OverduePayment](OpListOverdue, resp)
}

func (h *httpBackendAdapter) OverdueByResident(ctx context.Context, token string, residentID int64) (models.OverduePayment, error) {
	resp, err := h.send(OpOverdueByResident, h.authed(ctx, token), resty.MethodGet, "/payments/overdue/"+id(residentID))
	if err != nil {
		return models.OverduePayment{}, err
	}

	return decode[models.OverduePayment](OpOverdueByResident, resp)
}

func (h *httpBackendAdapter) PaymentByID(ctx context.Context, token string, paymentID int64) (models.Payment, error) {
	resp, err := h.send(OpPaymentByID, h.authed(ctx, token), resty.MethodGet, "/payments/"+id(paymentID))
	if err != nil {
		return models.Payment{}, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 && body[0] == '{' {
		return decode[models.Payment](OpPaymentByID, resp)
	}

	payments, err := decode[[]models.Payment](OpPaymentByID, resp)
	if err != nil {
		return models.Payment{}, err
	}
	if len(payments) == 0 {
		return models.Payment{}, &APIError{
			Op:      OpPaymentByID,
			Status:  http.StatusNotFound,
			Message: fmt.Sprintf("payment %d not found", paymentID),
		}
	}

	return payments[0], nil
}

func (h *httpBackendAdapter) CreatePayment(ctx context.Context, token string, payment models.NewPayment) (models.Payment, error) {
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = models.DefaultPaymentMethod
	}

	r := h.authed(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(payment)

	resp, err := h.send(OpCreatePayment, r, resty.MethodPost, "/payments")
	if err != nil {
		return models.Payment{}, err
	}

	return decode[models.Payment](OpCreatePayment, resp)
}

func (h *httpBackendAdapter) UpdatePayment(ctx context.Context, token string, paymentID int64, update models.PaymentUpdate) (models.Payment, error) {
	r := h.authed(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(update)

	resp, err := h.send(OpUpdatePayment, r, resty.MethodPut, "/payments/"+id(paymentID))
	if err != nil {
		return models.Payment{}, err
	}

	return decode[models.Payment](OpUpdatePayment, resp)
}

func (h *httpBackendAdapter) UploadProof(ctx context.Context, token string, paymentID int64, file models.ProofFile) (models.Payment, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	r := h.authed(ctx, token).
		SetMultipartField(proofFieldName, file.FileName, contentType, bytes.NewReader(file.Content))

	resp, err := h.send(OpUploadProof, r, resty.MethodPost, "/payments/"+id(paymentID)+"/proof")
	if err != nil {
		return models.Payment{}, err
	}

	return decode[models.Payment](OpUploadProof, resp)
}

func (h *httpBackendAdapter) NotifyOverdue(ctx context.Context, token string, year, month *int) (string, error) {
	r := withOptionalInts(h.authed(ctx, token), intParam{"year", year}, intParam{"month", month}).
		SetHeader("Accept", "*/*")

	resp, err := h.send(OpNotifyOverdue, r, resty.MethodPost, "/payments/notify-overdue")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpBackendAdapter) NotifyResident(ctx context.Context, token string, residentID int64) (string, error) {
	r := h.authed(ctx, token).SetHeader("Accept", "*/*")

	resp, err := h.send(OpNotifyResident, r, resty.MethodPost, "/payments/notify-overdue/"+id(residentID))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpBackendAdapter) TotalPaid(ctx context.Context, token string) (models.TotalPaid, error) {
	resp, err := h.send(OpTotalPaid, h.authed(ctx, token), resty.MethodGet, "/payments/total-paid")
	if err != nil {
		return models.TotalPaid{}, err
	}

	return decode[models.TotalPaid](OpTotalPaid, resp)
}

func (h *httpBackendAdapter) TotalDebt(ctx context.Context, token string) (models.TotalDebt, error) {
	resp, err := h.send(OpTotalDebt, h.authed(ctx, token), resty.MethodGet, "/payments/total-debt")
	if err != nil {
		return models.TotalDebt{}, err
	}

	return decode[models.TotalDebt](OpTotalDebt, resp)
}

func (h *httpBackendAdapter) DebtorsSummary(ctx context.Context, token string) (models.DebtorsSummary, error) {
	resp, err := h.send(OpDebtorsSummary, h.authed(ctx, token), resty.MethodGet, "/payments/debtors-summary")
	if err != nil {
		return models.DebtorsSummary{}, err
	}

	return decode[models.DebtorsSummary](OpDebtorsSummary, resp)
}

func (h *httpBackendAdapter) ListResidents(ctx context.Context, token string) ([]models.Resident, error) {
	resp, err := h.send(OpListResidents, h.authed(ctx, token), resty.MethodGet, "/residents")
	if err != nil {
		return nil, err
	}

	return decode[[]models.Resident](OpListResidents, resp)
}

func (h *httpBackendAdapter) CreateResident(ctx context.Context, token string, resident models.NewResident) (models.Resident, error) {
	body := models.Resident{
		Name:        resident.Name,
		OtherName:   resident.OtherName,
		HouseNumber: resident.HouseNumber,
		Contact:     resident.Contact,
		Email:       resident.Email,
		BI:          resident.BI,
		Password:    models.DefaultResidentPassword,
		Active:      true,
		Roles:       []string{models.RoleResident},
	}

	r := h.authed(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	resp, err := h.send(OpCreateResident, r, resty.MethodPost, "/residents")
	if err != nil {
		return models.Resident{}, err
	}

	return decode[models.Resident](OpCreateResident, resp)
}

func (h *httpBackendAdapter) ResidentsSummary(ctx context.Context, token string, year *int) (models.ResidentsSummary, error) {
	r := withOptionalInts(h.authed(ctx, token), intParam{"year", year})

	resp, err := h.send(OpResidentsSummary, r, resty.MethodGet, "/residents/summary")
	if err != nil {
		return models.ResidentsSummary{}, err
	}

	return decode[models.ResidentsSummary](OpResidentsSummary, resp)
}

func (h *httpBackendAdapter) UpdateResident(ctx context.Context, token string, residentID int64, update models.ResidentUpdate) error {
	r := h.authed(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(update)

	_, err := h.send(OpUpdateResident, r, resty.MethodPut, "/residents/"+id(residentID))
	return err
}

func (h *httpBackendAdapter) DeleteResident(ctx context.Context, token string, residentID int64) error {
	_, err := h.send(OpDeleteResident, h.authed(ctx, token), resty.MethodDelete, "/residents/"+id(residentID))
	return err
}

func (h *httpBackendAdapter) InactivateResident(ctx context.Context, token string, req models.Inactivation) error {
	r := h.authed(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req)

	_, err := h.send(OpInactivateResident, r, resty.MethodPost, "/residents/inactivate")
	return err
}

func (h *httpBackendAdapter) ResidentsPaymentStatus(ctx context.Context, token string, year *int) ([]models.ResidentPaymentStatus, error) {
	r := withOptionalInts(h.authed(ctx, token), intParam{"year", year})

	resp, err := h.send(OpResidentsPaymentStatus, r, resty.MethodGet, "/dashboard/residents-payment-status")
	if err != nil {
		return nil, err
	}

	return decode[[]models.ResidentPaymentStatus](OpResidentsPaymentStatus, resp)
}

func (h *httpBackendAdapter) authed(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token))
}

// send executes r and maps both transport and status failures.
func (h *httpBackendAdapter) send(op string, r *resty.Request, method, path string) (*resty.Response, error) {
	start := time.Now()
	resp, err := r.Execute(method, path)
	backendCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	log := logger.FromContext(r.Context())
	if err != nil {
		backendCallsTotal.WithLabelValues(op, "network_error").Inc()
		log.Warn().Err(err).Str("operation", op).Msg("backend unreachable")
		return nil, &NetworkError{Op: op, Err: err}
	}

	if err = mapHTTPError(op, resp); err != nil {
		backendCallsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode())).Inc()
		log.Info().Err(err).Str("operation", op).Int("status", resp.StatusCode()).Msg("backend rejected call")
		return nil, err
	}

	backendCallsTotal.WithLabelValues(op, "ok").Inc()
	return resp, nil
}

func decode[T any](op string, resp *resty.Response) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("decode %s response: %w", op, err)
	}
	return v, nil
}

type intParam struct {
	name  string
	value *int
}

// withOptionalInts sets query parameters, skipping nil values so that absent
// filters never appear in the URL.
func withOptionalInts(r *resty.Request, params ...intParam) *resty.Request {
	for _, p := range params {
		if p.value != nil {
			r.SetQueryParam(p.name, strconv.Itoa(*p.value))
		}
	}
	return r
}

func asAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
