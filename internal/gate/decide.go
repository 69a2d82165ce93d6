// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"time"

	"github.com/MKhiriev/condo-dashboard/models"
)

// State is the outcome bucket of a gate evaluation.
type State int

const (
	StatePublic State = iota
	StateProtectedNoToken
	StateProtectedValid
	StateProtectedExpired
	StateAdminInsufficientRole
	StatePublicWithValidTokenRedirect
)

func (s State) String() string {
	switch s {
	case StatePublic:
		return "Public"
	case StateProtectedNoToken:
		return "ProtectedNoToken"
	case StateProtectedValid:
		return "ProtectedValid"
	case StateProtectedExpired:
		return "ProtectedExpired"
	case StateAdminInsufficientRole:
		return "AdminInsufficientRole"
	case StatePublicWithValidTokenRedirect:
		return "PublicWithValidTokenRedirect"
	default:
		return "Unknown"
	}
}

// Action tells the caller whether to serve the request.
type Action int

const (
	ActionAllow Action = iota
	ActionRedirect
)

// Input is everything Decide looks at.
type Input struct {
	Class Classification

	// TokenPresent is true when the request carries a complete cookie pair.
	TokenPresent bool

	// Corrupted is true when exactly one cookie of the pair is present. The
	// request is then treated as carrying no token.
	Corrupted bool

	// Claims and DecodeErr are the result of decoding the token for gating.
	// Ignored when TokenPresent is false.
	Claims    models.Claims
	DecodeErr error

	Now       time.Time
	AdminRole string
}

// Decision is the result of Decide.
type Decision struct {
	State    State
	Action   Action
	Location string

	// ClearSession asks the caller to expire both session cookies.
	ClearSession bool
}

// Decide evaluates the access rules for one request. It is a pure function
// of in; rules are checked in a fixed order and the first match wins:
//
//  1. public path without token: allow
//  2. protected or admin path without token: redirect to login
//  3. undecodable or expired token: clear the session, then redirect to
//     login (public paths are served instead, so login never loops)
//  4. admin path without the admin role: redirect to the unauthorized page
//  5. public path that redirects authenticated users: redirect home
//  6. otherwise allow
func Decide(in Input) Decision {
	class := in.Class
	if class.Kind == KindExcluded {
		return Decision{State: StatePublic, Action: ActionAllow}
	}

	hasToken := in.TokenPresent && !in.Corrupted

	if !hasToken {
		if class.Kind == KindPublic {
			return Decision{State: StatePublic, Action: ActionAllow, ClearSession: in.Corrupted}
		}
		return Decision{
			State:        StateProtectedNoToken,
			Action:       ActionRedirect,
			Location:     LoginPath,
			ClearSession: in.Corrupted,
		}
	}

	if in.DecodeErr != nil || in.Claims.Expired(in.Now) {
		if class.Kind == KindPublic {
			return Decision{State: StatePublic, Action: ActionAllow, ClearSession: true}
		}
		return Decision{
			State:        StateProtectedExpired,
			Action:       ActionRedirect,
			Location:     LoginPath,
			ClearSession: true,
		}
	}

	if class.Kind == KindAdmin && !in.Claims.HasRole(in.AdminRole) {
		return Decision{State: StateAdminInsufficientRole, Action: ActionRedirect, Location: UnauthorizedPath}
	}

	if class.Kind == KindPublic {
		if class.RedirectWhenAuthenticated {
			return Decision{State: StatePublicWithValidTokenRedirect, Action: ActionRedirect, Location: HomePath}
		}
		return Decision{State: StatePublic, Action: ActionAllow}
	}

	return Decision{State: StateProtectedValid, Action: ActionAllow}
}
