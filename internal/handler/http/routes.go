// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/condo-dashboard/internal/ui/static"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withMetrics, withGZip)
	// every path, including unknown ones, is classified by the gate
	router.Use(h.gate.Middleware())

	// excluded from gating by the route table
	router.Get("/healthz", h.getServerVersion)
	router.Get("/version", h.getBuildInfo)
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static.FileSystem())))

	router.Get("/login", h.loginPage)
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)
	router.Get("/unauthorized", h.unauthorized)

	router.Get("/", h.home)
	router.Get("/history", h.history)
	router.Get("/admin", h.admin)

	router.Route("/resident", func(r chi.Router) {
		r.Get("/", h.residents)
		r.Post("/", h.createResident)
		r.Get("/{id}", h.editResident)
		r.Post("/{id}", h.updateResident)
		r.Post("/{id}/delete", h.deleteResident)
		r.Post("/{id}/inactivate", h.inactivateResident)
	})

	router.Route("/payment", func(r chi.Router) {
		r.Get("/", h.payments)
		r.Post("/", h.createPayment)
		r.Get("/{id}", h.payment)
		r.Post("/{id}", h.updatePayment)
		r.Post("/{id}/proof", h.uploadProof)
	})

	router.Route("/debtors", func(r chi.Router) {
		r.Get("/", h.debtors)
		r.Post("/notify", h.notifyAll)
		r.Get("/{id}", h.debtor)
		r.Post("/{id}/notify", h.notifyOne)
		r.Post("/{id}/pay", h.payDebt)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
