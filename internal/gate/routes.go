// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"strings"
)

// Well-known dashboard paths used by the gate.
const (
	LoginPath        = "/login"
	HomePath         = "/"
	UnauthorizedPath = "/unauthorized"
)

// Kind is the access bucket of a path.
type Kind int

const (
	// KindPublic paths are served without a session.
	KindPublic Kind = iota
	// KindProtected paths require a valid, unexpired token.
	KindProtected
	// KindAdmin paths additionally require the admin role.
	KindAdmin
	// KindExcluded paths bypass the gate entirely (assets, probes, metrics).
	KindExcluded
)

func (k Kind) String() string {
	switch k {
	case KindPublic:
		return "public"
	case KindProtected:
		return "protected"
	case KindAdmin:
		return "admin"
	case KindExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// Classification is the policy attached to a path.
type Classification struct {
	Kind Kind

	// RedirectWhenAuthenticated sends users with a valid session to the home
	// page. Only meaningful for KindPublic.
	RedirectWhenAuthenticated bool

	// Matched is false when the classification comes from the table default.
	Matched bool
}

// Rule maps a path, or a path prefix, to a classification.
type Rule struct {
	Path   string
	Prefix bool
	Class  Classification
}

func (r Rule) matches(path string) bool {
	if path == r.Path {
		return true
	}
	if !r.Prefix {
		return false
	}
	if strings.HasSuffix(r.Path, "/") {
		return strings.HasPrefix(path, r.Path)
	}
	return strings.HasPrefix(path, r.Path+"/")
}

// Routes is an ordered classification table with a default for paths no rule
// matches. The first matching rule wins.
type Routes struct {
	rules    []Rule
	fallback Classification
}

// NewRoutes returns a table with the given rules and fallback kind.
func NewRoutes(fallback Kind, rules ...Rule) *Routes {
	return &Routes{
		rules:    rules,
		fallback: Classification{Kind: fallback},
	}
}

// DefaultRoutes returns the dashboard route table. publicByDefault selects the
// policy for paths absent from the table; protected is the safe choice.
func DefaultRoutes(publicByDefault bool) *Routes {
	fallback := KindProtected
	if publicByDefault {
		fallback = KindPublic
	}

	return NewRoutes(fallback,
		Rule{Path: LoginPath, Class: Classification{Kind: KindPublic, RedirectWhenAuthenticated: true}},
		Rule{Path: UnauthorizedPath, Class: Classification{Kind: KindPublic}},
		Rule{Path: "/logout", Class: Classification{Kind: KindPublic}},

		Rule{Path: HomePath, Class: Classification{Kind: KindProtected}},
		Rule{Path: "/resident", Prefix: true, Class: Classification{Kind: KindProtected}},
		Rule{Path: "/payment", Prefix: true, Class: Classification{Kind: KindProtected}},
		Rule{Path: "/debtors", Prefix: true, Class: Classification{Kind: KindProtected}},
		Rule{Path: "/history", Prefix: true, Class: Classification{Kind: KindProtected}},

		Rule{Path: "/admin", Prefix: true, Class: Classification{Kind: KindAdmin}},

		Rule{Path: "/static/", Prefix: true, Class: Classification{Kind: KindExcluded}},
		Rule{Path: "/metrics", Class: Classification{Kind: KindExcluded}},
		Rule{Path: "/healthz", Class: Classification{Kind: KindExcluded}},
		Rule{Path: "/version", Class: Classification{Kind: KindExcluded}},
		Rule{Path: "/favicon.ico", Class: Classification{Kind: KindExcluded}},
		Rule{Path: "/robots.txt", Class: Classification{Kind: KindExcluded}},
	)
}

// Classify returns the classification of path. Every path gets exactly one.
func (r *Routes) Classify(path string) Classification {
	for _, rule := range r.rules {
		if rule.matches(path) {
			c := rule.Class
			c.Matched = true
			return c
		}
	}
	return r.fallback
}
