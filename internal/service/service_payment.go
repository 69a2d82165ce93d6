// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

// Tags each payment mutation invalidates.
var (
	createPaymentInvalidates = []string{
		cache.TagPayments,
		cache.TagOverduePayments,
		cache.TagOverdueByResident,
		cache.TagTotalPaid,
		cache.TagTotalDebt,
		cache.TagDebtorsSummary,
		cache.TagResidentsPaymentStatus,
	}
	updatePaymentInvalidates = []string{cache.TagPayments, cache.TagPayment, cache.TagTotalPaid}
	uploadProofInvalidates   = []string{cache.TagPayments}
)

type paymentService struct {
	backend   adapter.BackendAdapter
	queries   *cache.Client
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

func NewPaymentService(backend adapter.BackendAdapter, queries *cache.Client, validator validators.Validator,
	log *logger.Logger, now func() time.Time) PaymentService {
	return &paymentService{
		backend:   backend,
		queries:   queries,
		validator: validator,
		logger:    log.WithComponent("payments"),
		now:       now,
	}
}

func (p *paymentService) List(ctx context.Context, s models.Session, year, month *int) ([]models.Payment, error) {
	return cache.Query(ctx, p.queries, s.Subject, cache.NewKey(cache.TagPayments, year, month), s.Token,
		func(ctx context.Context, token string) ([]models.Payment, error) {
			return p.backend.ListPayments(ctx, token, year, month)
		})
}

func (p *paymentService) Get(ctx context.Context, s models.Session, paymentID int64) (models.Payment, error) {
	return cache.Query(ctx, p.queries, s.Subject, cache.NewKey(cache.TagPayment, paymentID), s.Token,
		func(ctx context.Context, token string) (models.Payment, error) {
			return p.backend.PaymentByID(ctx, token, paymentID)
		})
}

func (p *paymentService) Create(ctx context.Context, s models.Session, form models.PaymentForm) (models.Payment, error) {
	if err := p.validator.Validate(ctx, form); err != nil {
		return models.Payment{}, err
	}
	if s.Token == "" {
		return models.Payment{}, cache.ErrPreconditionNotMet
	}

	created, err := p.backend.CreatePayment(ctx, s.Token, form.NewPayment())
	if err != nil {
		return models.Payment{}, err
	}

	p.queries.Invalidate(createPaymentInvalidates...)
	p.logger.Info().Int64("payment_id", created.ID).Int64("resident_id", form.ResidentID).Msg("payment created")

	return created, nil
}

func (p *paymentService) Update(ctx context.Context, s models.Session, paymentID int64, update models.PaymentUpdate) (models.Payment, error) {
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.Payment{}, err
	}
	if err := p.checkEditable(ctx, s, paymentID); err != nil {
		return models.Payment{}, err
	}

	updated, err := p.backend.UpdatePayment(ctx, s.Token, paymentID, update)
	if err != nil {
		return models.Payment{}, err
	}

	p.patchLists(updated)
	p.queries.Invalidate(updatePaymentInvalidates...)

	return updated, nil
}

func (p *paymentService) UploadProof(ctx context.Context, s models.Session, paymentID int64, file models.ProofFile) (models.Payment, error) {
	if err := p.validator.Validate(ctx, file); err != nil {
		return models.Payment{}, err
	}
	if err := p.checkEditable(ctx, s, paymentID); err != nil {
		return models.Payment{}, err
	}

	updated, err := p.backend.UploadProof(ctx, s.Token, paymentID, file)
	if err != nil {
		return models.Payment{}, err
	}

	p.patchLists(updated)
	p.queries.Set(s.Subject, cache.NewKey(cache.TagPayment, paymentID), updated)
	p.queries.Invalidate(uploadProofInvalidates...)

	return updated, nil
}

// checkEditable loads the payment (cached) and enforces the edit window.
func (p *paymentService) checkEditable(ctx context.Context, s models.Session, paymentID int64) error {
	current, err := p.Get(ctx, s, paymentID)
	if err != nil {
		return err
	}
	if !current.Editable(p.now()) {
		return ErrEditWindowClosed
	}
	return nil
}

func (p *paymentService) patchLists(updated models.Payment) {
	cache.Patch(p.queries, cache.TagPayments, func(old []models.Payment) []models.Payment {
		return cache.ReplaceByID(old, updated)
	})
}

func (p *paymentService) Overdue(ctx context.Context, s models.Session, year, month *int) ([]models.OverduePayment, error) {
	return cache.Query(ctx, p.queries, s.Subject, cache.NewKey(cache.TagOverduePayments, year, month), s.Token,
		func(ctx context.Context, token string) ([]models.OverduePayment, error) {
			return p.backend.ListOverdue(ctx, token, year, month)
		})
}

func (p *paymentService) OverdueByResident(ctx context.Context, s models.Session, residentID int64) (models.OverduePayment, error) {
	return cache.Query(ctx, p.queries, s.Subject, cache.NewKey(cache.TagOverdueByResident, residentID), s.Token,
		func(ctx context.Context, token string) (models.OverduePayment, error) {
			return p.backend.OverdueByResident(ctx, token, residentID)
		})
}

func (p *paymentService) NotifyOverdue(ctx context.Context, s models.Session, year, month *int) (string, error) {
	if s.Token == "" {
		return "", cache.ErrPreconditionNotMet
	}
	return p.backend.NotifyOverdue(ctx, s.Token, year, month)
}

func (p *paymentService) NotifyResident(ctx context.Context, s models.Session, residentID int64) (string, error) {
	if s.Token == "" {
		return "", cache.ErrPreconditionNotMet
	}
	return p.backend.NotifyResident(ctx, s.Token, residentID)
}
