// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/mock"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/session"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestLoginPage(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestLoginPage_AuthenticatedUserIsSentHome(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := serve(router, withSession(t, httptest.NewRequest(http.MethodGet, "/login", nil)))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLogin_Success(t *testing.T) {
	svcs := newTestServices()
	var got models.LoginRequest
	svcs.AuthService = &fakeAuthService{
		login: func(_ context.Context, req models.LoginRequest) (models.LoginResult, error) {
			got = req
			return models.LoginResult{Name: "Ana Silva", Email: req.Email, Token: "h.p.s"}, nil
		},
	}
	router := newTestRouter(t, svcs)

	rec := serve(router, postForm("/login", url.Values{"email": {"ana@condo.ao"}, "password": {"secret1"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, models.LoginRequest{Email: "ana@condo.ao", Password: "secret1"}, got)

	cookies := cookiesByName(rec)
	require.Contains(t, cookies, session.TokenCookieName)
	require.Contains(t, cookies, session.UserNameCookieName)
	assert.Equal(t, "h.p.s", cookies[session.TokenCookieName].Value)
	assert.Equal(t, url.QueryEscape("Ana Silva"), cookies[session.UserNameCookieName].Value)
	assert.True(t, cookies[session.TokenCookieName].HttpOnly)
}

func TestLogin_CookiesOpenProtectedPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	issued := mintToken(t)

	backend.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "ana@condo.ao", Password: "secret1"}).
		Return(models.LoginResult{Name: "Ana Silva", Email: "ana@condo.ao", Token: issued}, nil)

	var seen models.Session
	svcs := newTestServices()
	svcs.AuthService = service.NewAuthService(backend, validators.NewFormValidator(), logger.Nop())
	svcs.DashboardService = &fakeDashboardService{
		overview: func(_ context.Context, s models.Session, _ *int) models.Overview {
			seen = s
			return models.Overview{}
		},
	}
	router := newTestRouter(t, svcs)

	login := serve(router, postForm("/login", url.Values{"email": {"ana@condo.ao"}, "password": {"secret1"}}))
	require.Equal(t, http.StatusSeeOther, login.Code)
	require.Len(t, login.Result().Cookies(), 2)

	next := httptest.NewRequest(http.MethodGet, login.Header().Get("Location"), nil)
	for _, c := range login.Result().Cookies() {
		next.AddCookie(c)
	}
	rec := serve(router, next)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, issued, seen.Token)
	assert.Equal(t, "ana@condo.ao", seen.Subject)
	assert.Equal(t, "Ana Silva", seen.DisplayName)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid credentials",
			err:        fmt.Errorf("login: %w", adapter.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Credências inválidas",
		},
		{
			name:       "form errors",
			err:        validators.FieldErrors{validators.FieldEmail: "Digite um email válido"},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Digite um email válido",
		},
		{
			name:       "backend unreachable",
			err:        &adapter.NetworkError{Op: adapter.OpLogin, Err: errors.New("refused")},
			wantStatus: http.StatusBadGateway,
			wantBody:   "Não foi possível contactar o servidor",
		},
		{
			name:       "unreadable token",
			err:        fmt.Errorf("%w: bad", service.ErrUnreadableToken),
			wantStatus: http.StatusBadGateway,
			wantBody:   service.MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.AuthService = &fakeAuthService{
				login: func(context.Context, models.LoginRequest) (models.LoginResult, error) {
					return models.LoginResult{}, tt.err
				},
			}
			router := newTestRouter(t, svcs)

			rec := serve(router, postForm("/login", url.Values{"email": {"ana@condo.ao"}, "password": {"x"}}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Contains(t, rec.Body.String(), `value="ana@condo.ao"`)
			assert.Empty(t, cookiesByName(rec))
		})
	}
}

func TestLogout_ClearsBothCookies(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := serve(router, withSession(t, httptest.NewRequest(http.MethodPost, "/logout", nil)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := cookiesByName(rec)
	require.Contains(t, cookies, session.TokenCookieName)
	require.Contains(t, cookies, session.UserNameCookieName)
	assert.Negative(t, cookies[session.TokenCookieName].MaxAge)
	assert.Negative(t, cookies[session.UserNameCookieName].MaxAge)
}

func TestExpiredSessionIsClearedAndRedirected(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	req := httptest.NewRequest(http.MethodGet, "/payment", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "not-a-token"})
	req.AddCookie(&http.Cookie{Name: session.UserNameCookieName, Value: "Ana"})
	rec := serve(router, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	cookies := cookiesByName(rec)
	assert.Contains(t, cookies, session.TokenCookieName)
	assert.Contains(t, cookies, session.UserNameCookieName)
}
