// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate decides, before any page handler runs, whether a request may
// be served, must be redirected, or must have its session cleared.
package gate

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/session"
	"github.com/MKhiriev/condo-dashboard/internal/token"
	"github.com/MKhiriev/condo-dashboard/models"
)

var decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dashboard_gate_decisions_total",
	Help: "Auth gate decisions by resulting state",
}, []string{"state"})

// Gate applies Decide to incoming requests.
type Gate struct {
	routes    *Routes
	store     *session.Store
	adminRole string
	now       func() time.Time
	log       *logger.Logger
}

// Option customises a Gate.
type Option func(*Gate)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// New returns a Gate using routes for classification and store for cookies.
func New(routes *Routes, store *session.Store, adminRole string, log *logger.Logger, opts ...Option) *Gate {
	g := &Gate{
		routes:    routes,
		store:     store,
		adminRole: adminRole,
		now:       time.Now,
		log:       log.WithComponent("gate"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate classifies r and runs Decide. The returned session is populated
// only when the request carries a valid token.
func (g *Gate) Evaluate(r *http.Request) (Decision, models.Session, bool) {
	in := Input{
		Class:     g.routes.Classify(r.URL.Path),
		Now:       g.now(),
		AdminRole: g.adminRole,
	}
	if in.Class.Kind == KindExcluded {
		return Decide(in), models.Session{}, false
	}

	pair, ok := g.store.Read(r)
	in.TokenPresent = ok
	in.Corrupted = !ok && g.store.Partial(r)
	if ok {
		in.Claims, in.DecodeErr = token.DecodeForGate(pair.Token)
		if in.DecodeErr != nil {
			g.log.Debug().Err(in.DecodeErr).Str("path", r.URL.Path).Msg("session token rejected")
		}
	}

	d := Decide(in)

	if !ok || in.DecodeErr != nil || d.ClearSession {
		return d, models.Session{}, false
	}

	return d, models.Session{
		Token:            pair.Token,
		Subject:          in.Claims.Subject,
		DisplayName:      pair.DisplayName,
		Roles:            in.Claims.Roles,
		ExpiresAtEpochMs: in.Claims.ExpiresAtEpochMs,
	}, true
}

// Middleware enforces the gate decision and stores the session in the
// request context for allowed requests.
func (g *Gate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, sess, ok := g.Evaluate(r)
			decisionsTotal.WithLabelValues(d.State.String()).Inc()

			if d.ClearSession {
				g.store.Clear(w)
			}

			if d.Action == ActionRedirect {
				logger.FromRequest(r).Debug().
					Str("path", r.URL.Path).
					Str("state", d.State.String()).
					Str("location", d.Location).
					Msg("gate redirect")
				http.Redirect(w, r, d.Location, http.StatusFound)
				return
			}

			if ok {
				r = r.WithContext(session.WithContext(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}
