// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/gate"
	httphandler "github.com/MKhiriev/condo-dashboard/internal/handler/http"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/server"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/session"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/internal/workers"
	"github.com/MKhiriev/condo-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("dashboard")
	cfg, err := config.GetDashboardConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("dashboard", logger.WithLevel(cfg.App.LogLevel))
	log.Debug().Any("config", cfg).Msg("received configs")

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	queries, err := cache.New(cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating query cache")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(
		service.NewAppInfoService(cfg.App, buildInfo),
		backend,
		queries,
		validators.NewFormValidator(),
		log,
	)

	renderer, err := ui.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing page templates")
	}

	sessions := session.NewStore(cfg.App.Production)
	routes := gate.DefaultRoutes(cfg.App.DefaultRoutePolicy == config.RoutePolicyPublic)
	g := gate.New(routes, sessions, cfg.App.AdminRole, log)

	handler := httphandler.NewHandler(services, g, sessions, renderer, cfg.App.AdminRole, log)

	bg := workers.NewWorkers(cfg.Workers, queries, log)
	bg.Run()

	srv, err := server.NewServer(handler.Init(), cfg.Server, log, server.WithShutdownHook(bg.Stop))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
