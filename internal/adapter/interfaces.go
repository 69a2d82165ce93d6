// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client of the condominium REST backend.
//
// [BackendAdapter] has one method per backend operation. Every authenticated
// method takes the caller's bearer token as a parameter; the adapter holds no
// session state, touches neither cookies nor the cache, and normalises every
// failure into [*NetworkError] or [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/condo-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the typed surface of the backend. Optional numeric
// filters are pointers; nil omits the query parameter entirely.
type BackendAdapter interface {
	// Login exchanges credentials for a token. A 401 yields ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	ListPayments(ctx context.Context, token string, year, month *int) ([]models.Payment, error)
	ListOverdue(ctx context.Context, token string, year, month *int) ([]models.OverduePayment, error)
	OverdueByResident(ctx context.Context, token string, residentID int64) (models.OverduePayment, error)

	// PaymentByID unwraps the single-element array the backend answers with.
	// An empty array is reported as a 404 APIError.
	PaymentByID(ctx context.Context, token string, paymentID int64) (models.Payment, error)

	CreatePayment(ctx context.Context, token string, payment models.NewPayment) (models.Payment, error)
	UpdatePayment(ctx context.Context, token string, paymentID int64, update models.PaymentUpdate) (models.Payment, error)

	// UploadProof posts the file as multipart field "proofFile".
	UploadProof(ctx context.Context, token string, paymentID int64, file models.ProofFile) (models.Payment, error)

	// NotifyOverdue and NotifyResident return the backend's plain-text confirmation.
	NotifyOverdue(ctx context.Context, token string, year, month *int) (string, error)
	NotifyResident(ctx context.Context, token string, residentID int64) (string, error)

	TotalPaid(ctx context.Context, token string) (models.TotalPaid, error)
	TotalDebt(ctx context.Context, token string) (models.TotalDebt, error)
	DebtorsSummary(ctx context.Context, token string) (models.DebtorsSummary, error)

	ListResidents(ctx context.Context, token string) ([]models.Resident, error)

	// CreateResident registers a resident with the default password, active
	// flag and resident role.
	CreateResident(ctx context.Context, token string, resident models.NewResident) (models.Resident, error)
	ResidentsSummary(ctx context.Context, token string, year *int) (models.ResidentsSummary, error)
	UpdateResident(ctx context.Context, token string, residentID int64, update models.ResidentUpdate) error

	// DeleteResident may hard-delete or inactivate; the response does not say which.
	DeleteResident(ctx context.Context, token string, residentID int64) error
	InactivateResident(ctx context.Context, token string, req models.Inactivation) error

	ResidentsPaymentStatus(ctx context.Context, token string, year *int) ([]models.ResidentPaymentStatus, error)
}
