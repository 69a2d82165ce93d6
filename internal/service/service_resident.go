// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

// houseNumberTaken is the start of the backend message for a duplicated house number.
const houseNumberTaken = "Número da casa já associado"

var (
	residentChangeInvalidates  = []string{cache.TagResidents, cache.TagResidentsSummary}
	residentRemovalInvalidates = []string{
		cache.TagResidents,
		cache.TagResidentsSummary,
		cache.TagOverduePayments,
		cache.TagDebtorsSummary,
	}
)

type residentService struct {
	backend   adapter.BackendAdapter
	queries   *cache.Client
	validator validators.Validator
	logger    *logger.Logger
}

func NewResidentService(backend adapter.BackendAdapter, queries *cache.Client, validator validators.Validator, log *logger.Logger) ResidentService {
	return &residentService{
		backend:   backend,
		queries:   queries,
		validator: validator,
		logger:    log.WithComponent("residents"),
	}
}

func (r *residentService) List(ctx context.Context, s models.Session) ([]models.Resident, error) {
	return cache.Query(ctx, r.queries, s.Subject, cache.NewKey(cache.TagResidents), s.Token, r.backend.ListResidents)
}

func (r *residentService) Create(ctx context.Context, s models.Session, resident models.NewResident) (models.Resident, error) {
	if err := r.validator.Validate(ctx, resident); err != nil {
		return models.Resident{}, err
	}
	if s.Token == "" {
		return models.Resident{}, cache.ErrPreconditionNotMet
	}

	created, err := r.backend.CreateResident(ctx, s.Token, resident)
	if err != nil {
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) && strings.Contains(apiErr.Message, houseNumberTaken) {
			return models.Resident{}, validators.FieldErrors{validators.FieldHouseNumber: MsgHouseNumberTaken}
		}
		return models.Resident{}, err
	}

	r.queries.Invalidate(residentChangeInvalidates...)
	r.logger.Info().Int64("resident_id", created.ID).Msg("resident created")

	return created, nil
}

func (r *residentService) Update(ctx context.Context, s models.Session, residentID int64, update models.ResidentUpdate) error {
	if err := r.validator.Validate(ctx, update); err != nil {
		return err
	}
	if s.Token == "" {
		return cache.ErrPreconditionNotMet
	}

	if err := r.backend.UpdateResident(ctx, s.Token, residentID, update); err != nil {
		return err
	}

	r.queries.Invalidate(residentChangeInvalidates...)
	return nil
}

func (r *residentService) Delete(ctx context.Context, s models.Session, residentID int64) (models.DeleteOutcome, error) {
	if s.Token == "" {
		return models.DeleteOutcome{}, cache.ErrPreconditionNotMet
	}

	if err := r.backend.DeleteResident(ctx, s.Token, residentID); err != nil {
		return models.DeleteOutcome{}, err
	}

	r.queries.Invalidate(residentRemovalInvalidates...)
	r.logger.Info().Int64("resident_id", residentID).Msg("resident removed")

	return models.DeleteOutcome{BackendDetermined: true, Message: MsgDeleteOutcome}, nil
}

func (r *residentService) Inactivate(ctx context.Context, s models.Session, req models.Inactivation) error {
	req.Active = false
	if err := r.validator.Validate(ctx, req); err != nil {
		return err
	}
	if s.Token == "" {
		return cache.ErrPreconditionNotMet
	}

	if err := r.backend.InactivateResident(ctx, s.Token, req); err != nil {
		return err
	}

	r.queries.Invalidate(residentRemovalInvalidates...)
	return nil
}
