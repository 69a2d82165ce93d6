// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service composes the backend adapter, the query cache and the form
// validators into the operations behind each dashboard screen.
//
// Reads go through the query cache scoped to the session subject. Mutations
// validate input, call the backend and, only on success, invalidate or patch
// the cache entries they affect.
package service

import (
	"context"

	"github.com/MKhiriev/condo-dashboard/models"
)

// AuthService exchanges credentials for a session token. Logging out only
// clears cookies and needs no service.
type AuthService interface {
	// Login validates the credentials, calls the backend and checks that the
	// returned token carries readable claims.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
}

// DashboardService serves the home screen summaries.
type DashboardService interface {
	TotalPaid(ctx context.Context, s models.Session) (models.TotalPaid, error)
	TotalDebt(ctx context.Context, s models.Session) (models.TotalDebt, error)
	DebtorsSummary(ctx context.Context, s models.Session) (models.DebtorsSummary, error)
	ResidentsSummary(ctx context.Context, s models.Session, year *int) (models.ResidentsSummary, error)
	ResidentsPaymentStatus(ctx context.Context, s models.Session, year *int) ([]models.ResidentPaymentStatus, error)

	// Overview loads every home screen widget concurrently. A failing widget
	// carries its own error; the others still render.
	Overview(ctx context.Context, s models.Session, year *int) models.Overview
}

// PaymentService serves the payment and debtor screens.
type PaymentService interface {
	List(ctx context.Context, s models.Session, year, month *int) ([]models.Payment, error)
	Get(ctx context.Context, s models.Session, paymentID int64) (models.Payment, error)
	Create(ctx context.Context, s models.Session, form models.PaymentForm) (models.Payment, error)

	// Update rejects payments older than models.PaymentEditWindow.
	Update(ctx context.Context, s models.Session, paymentID int64, update models.PaymentUpdate) (models.Payment, error)

	// UploadProof attaches a proof file; the edit window applies here too.
	UploadProof(ctx context.Context, s models.Session, paymentID int64, file models.ProofFile) (models.Payment, error)

	Overdue(ctx context.Context, s models.Session, year, month *int) ([]models.OverduePayment, error)
	OverdueByResident(ctx context.Context, s models.Session, residentID int64) (models.OverduePayment, error)
	NotifyOverdue(ctx context.Context, s models.Session, year, month *int) (string, error)
	NotifyResident(ctx context.Context, s models.Session, residentID int64) (string, error)
}

// ResidentService serves the resident registry screen.
type ResidentService interface {
	List(ctx context.Context, s models.Session) ([]models.Resident, error)
	Create(ctx context.Context, s models.Session, resident models.NewResident) (models.Resident, error)
	Update(ctx context.Context, s models.Session, residentID int64, update models.ResidentUpdate) error

	// Delete reports success whether the backend deleted or inactivated the
	// resident; the response does not tell them apart.
	Delete(ctx context.Context, s models.Session, residentID int64) (models.DeleteOutcome, error)
	Inactivate(ctx context.Context, s models.Session, req models.Inactivation) error
}
