// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/models"
)

type dashboardService struct {
	backend adapter.BackendAdapter
	queries *cache.Client
}

func NewDashboardService(backend adapter.BackendAdapter, queries *cache.Client) DashboardService {
	return &dashboardService{backend: backend, queries: queries}
}

func (d *dashboardService) TotalPaid(ctx context.Context, s models.Session) (models.TotalPaid, error) {
	return cache.Query(ctx, d.queries, s.Subject, cache.NewKey(cache.TagTotalPaid), s.Token, d.backend.TotalPaid)
}

func (d *dashboardService) TotalDebt(ctx context.Context, s models.Session) (models.TotalDebt, error) {
	return cache.Query(ctx, d.queries, s.Subject, cache.NewKey(cache.TagTotalDebt), s.Token, d.backend.TotalDebt)
}

func (d *dashboardService) DebtorsSummary(ctx context.Context, s models.Session) (models.DebtorsSummary, error) {
	return cache.Query(ctx, d.queries, s.Subject, cache.NewKey(cache.TagDebtorsSummary), s.Token, d.backend.DebtorsSummary)
}

func (d *dashboardService) ResidentsSummary(ctx context.Context, s models.Session, year *int) (models.ResidentsSummary, error) {
	return cache.Query(ctx, d.queries, s.Subject, cache.NewKey(cache.TagResidentsSummary, year), s.Token,
		func(ctx context.Context, token string) (models.ResidentsSummary, error) {
			return d.backend.ResidentsSummary(ctx, token, year)
		})
}

func (d *dashboardService) ResidentsPaymentStatus(ctx context.Context, s models.Session, year *int) ([]models.ResidentPaymentStatus, error) {
	return cache.Query(ctx, d.queries, s.Subject, cache.NewKey(cache.TagResidentsPaymentStatus, year), s.Token,
		func(ctx context.Context, token string) ([]models.ResidentPaymentStatus, error) {
			return d.backend.ResidentsPaymentStatus(ctx, token, year)
		})
}

func (d *dashboardService) Overview(ctx context.Context, s models.Session, year *int) models.Overview {
	var o models.Overview
	var g errgroup.Group

	g.Go(func() error {
		o.TotalPaid.Value, o.TotalPaid.Err = d.TotalPaid(ctx, s)
		return nil
	})
	g.Go(func() error {
		o.TotalDebt.Value, o.TotalDebt.Err = d.TotalDebt(ctx, s)
		return nil
	})
	g.Go(func() error {
		o.DebtorsSummary.Value, o.DebtorsSummary.Err = d.DebtorsSummary(ctx, s)
		return nil
	})
	g.Go(func() error {
		o.ResidentsSummary.Value, o.ResidentsSummary.Err = d.ResidentsSummary(ctx, s, year)
		return nil
	})
	g.Go(func() error {
		o.PaymentStatus.Value, o.PaymentStatus.Err = d.ResidentsPaymentStatus(ctx, s, year)
		return nil
	})
	_ = g.Wait()

	return o
}
