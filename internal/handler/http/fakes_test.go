// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/condo-dashboard/internal/gate"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/session"
	"github.com/MKhiriev/condo-dashboard/internal/ui"
	"github.com/MKhiriev/condo-dashboard/models"
)

const testAdminRole = "ROLE_ADMIN"

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// ---- Fake: AppInfoService ----

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

// ---- Fake: AuthService ----

type fakeAuthService struct {
	login func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if f.login == nil {
		return models.LoginResult{}, nil
	}
	return f.login(ctx, req)
}

// ---- Fake: DashboardService ----

type fakeDashboardService struct {
	overview func(ctx context.Context, s models.Session, year *int) models.Overview
	status   func(ctx context.Context, s models.Session, year *int) ([]models.ResidentPaymentStatus, error)
}

func (f *fakeDashboardService) TotalPaid(context.Context, models.Session) (models.TotalPaid, error) {
	return models.TotalPaid{}, nil
}

func (f *fakeDashboardService) TotalDebt(context.Context, models.Session) (models.TotalDebt, error) {
	return models.TotalDebt{}, nil
}

func (f *fakeDashboardService) DebtorsSummary(context.Context, models.Session) (models.DebtorsSummary, error) {
	return models.DebtorsSummary{}, nil
}

func (f *fakeDashboardService) ResidentsSummary(context.Context, models.Session, *int) (models.ResidentsSummary, error) {
	return models.ResidentsSummary{}, nil
}

func (f *fakeDashboardService) ResidentsPaymentStatus(ctx context.Context, s models.Session, year *int) ([]models.ResidentPaymentStatus, error) {
	if f.status == nil {
		return nil, nil
	}
	return f.status(ctx, s, year)
}

func (f *fakeDashboardService) Overview(ctx context.Context, s models.Session, year *int) models.Overview {
	if f.overview == nil {
		return models.Overview{}
	}
	return f.overview(ctx, s, year)
}

// ---- Fake: PaymentService ----

type fakePaymentService struct {
	list           func(ctx context.Context, s models.Session, year, month *int) ([]models.Payment, error)
	get            func(ctx context.Context, s models.Session, id int64) (models.Payment, error)
	create         func(ctx context.Context, s models.Session, form models.PaymentForm) (models.Payment, error)
	update         func(ctx context.Context, s models.Session, id int64, u models.PaymentUpdate) (models.Payment, error)
	uploadProof    func(ctx context.Context, s models.Session, id int64, f models.ProofFile) (models.Payment, error)
	overdue        func(ctx context.Context, s models.Session, year, month *int) ([]models.OverduePayment, error)
	overdueBy      func(ctx context.Context, s models.Session, id int64) (models.OverduePayment, error)
	notifyOverdue  func(ctx context.Context, s models.Session, year, month *int) (string, error)
	notifyResident func(ctx context.Context, s models.Session, id int64) (string, error)
}

func (f *fakePaymentService) List(ctx context.Context, s models.Session, year, month *int) ([]models.Payment, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(ctx, s, year, month)
}

func (f *fakePaymentService) Get(ctx context.Context, s models.Session, id int64) (models.Payment, error) {
	if f.get == nil {
		return models.Payment{}, nil
	}
	return f.get(ctx, s, id)
}

func (f *fakePaymentService) Create(ctx context.Context, s models.Session, form models.PaymentForm) (models.Payment, error) {
	if f.create == nil {
		return models.Payment{}, nil
	}
	return f.create(ctx, s, form)
}

func (f *fakePaymentService) Update(ctx context.Context, s models.Session, id int64, u models.PaymentUpdate) (models.Payment, error) {
	if f.update == nil {
		return models.Payment{}, nil
	}
	return f.update(ctx, s, id, u)
}

func (f *fakePaymentService) UploadProof(ctx context.Context, s models.Session, id int64, file models.ProofFile) (models.Payment, error) {
	if f.uploadProof == nil {
		return models.Payment{}, nil
	}
	return f.uploadProof(ctx, s, id, file)
}

func (f *fakePaymentService) Overdue(ctx context.Context, s models.Session, year, month *int) ([]models.OverduePayment, error) {
	if f.overdue == nil {
		return nil, nil
	}
	return f.overdue(ctx, s, year, month)
}

func (f *fakePaymentService) OverdueByResident(ctx context.Context, s models.Session, id int64) (models.OverduePayment, error) {
	if f.overdueBy == nil {
		return models.OverduePayment{}, nil
	}
	return f.overdueBy(ctx, s, id)
}

func (f *fakePaymentService) NotifyOverdue(ctx context.Context, s models.Session, year, month *int) (string, error) {
	if f.notifyOverdue == nil {
		return "", nil
	}
	return f.notifyOverdue(ctx, s, year, month)
}

func (f *fakePaymentService) NotifyResident(ctx context.Context, s models.Session, id int64) (string, error) {
	if f.notifyResident == nil {
		return "", nil
	}
	return f.notifyResident(ctx, s, id)
}

// ---- Fake: ResidentService ----

type fakeResidentService struct {
	list       func(ctx context.Context, s models.Session) ([]models.Resident, error)
	create     func(ctx context.Context, s models.Session, r models.NewResident) (models.Resident, error)
	update     func(ctx context.Context, s models.Session, id int64, u models.ResidentUpdate) error
	delete     func(ctx context.Context, s models.Session, id int64) (models.DeleteOutcome, error)
	inactivate func(ctx context.Context, s models.Session, req models.Inactivation) error
}

func (f *fakeResidentService) List(ctx context.Context, s models.Session) ([]models.Resident, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(ctx, s)
}

func (f *fakeResidentService) Create(ctx context.Context, s models.Session, r models.NewResident) (models.Resident, error) {
	if f.create == nil {
		return models.Resident{}, nil
	}
	return f.create(ctx, s, r)
}

func (f *fakeResidentService) Update(ctx context.Context, s models.Session, id int64, u models.ResidentUpdate) error {
	if f.update == nil {
		return nil
	}
	return f.update(ctx, s, id, u)
}

func (f *fakeResidentService) Delete(ctx context.Context, s models.Session, id int64) (models.DeleteOutcome, error) {
	if f.delete == nil {
		return models.DeleteOutcome{}, nil
	}
	return f.delete(ctx, s, id)
}

func (f *fakeResidentService) Inactivate(ctx context.Context, s models.Session, req models.Inactivation) error {
	if f.inactivate == nil {
		return nil
	}
	return f.inactivate(ctx, s, req)
}

// ---- Helpers ----

// newTestServices returns services whose every method succeeds with zero
// values. Tests replace the fields they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AppInfoService:   &fakeAppInfoService{version: "test-version"},
		AuthService:      &fakeAuthService{},
		DashboardService: &fakeDashboardService{},
		PaymentService:   &fakePaymentService{},
		ResidentService:  &fakeResidentService{},
	}
}

func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()

	renderer, err := ui.NewRenderer()
	require.NoError(t, err)

	clock := func() time.Time { return testNow }
	store := session.NewStore(false)
	g := gate.New(gate.DefaultRoutes(false), store, testAdminRole, logger.Nop(), gate.WithClock(clock))

	return NewHandler(svcs, g, store, renderer, testAdminRole, logger.Nop(), WithClock(clock)).Init()
}

// mintToken signs a token the dashboard can read; the signature is never
// checked on this side.
func mintToken(t *testing.T, roles ...string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "ana@condo.ao",
		"exp": testNow.Add(time.Hour).Unix(),
	}
	if len(roles) > 0 {
		claims["roles"] = roles
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// withSession attaches a complete session cookie pair.
func withSession(t *testing.T, req *http.Request, roles ...string) *http.Request {
	t.Helper()
	req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: mintToken(t, roles...)})
	req.AddCookie(&http.Cookie{Name: session.UserNameCookieName, Value: url.QueryEscape("Ana Silva")})
	return req
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// flash decodes the notice carried by a redirect Location.
func flash(t *testing.T, rec *httptest.ResponseRecorder) (path, ok, failed string) {
	t.Helper()
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	return loc.Path, loc.Query().Get(flashOKParam), loc.Query().Get(flashErrParam)
}
