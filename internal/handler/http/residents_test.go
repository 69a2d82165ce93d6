// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/service"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

var testResidents = []models.Resident{
	{ID: 1, Name: "Ana Silva", HouseNumber: "A1", Contact: "923000111", Email: "ana@condo.ao", BI: "001", Active: true,
		Roles: []string{models.RoleAdmin}},
	{ID: 2, Name: "Beto Costa", HouseNumber: "B7", Contact: "923000222", Email: "beto@condo.ao", BI: "002"},
}

func residentServices(fake *fakeResidentService) *service.Services {
	if fake.list == nil {
		fake.list = func(context.Context, models.Session) ([]models.Resident, error) {
			return testResidents, nil
		}
	}
	svcs := newTestServices()
	svcs.ResidentService = fake
	return svcs
}

func TestResidents_List(t *testing.T) {
	var gotSubject string
	router := newTestRouter(t, residentServices(&fakeResidentService{
		list: func(_ context.Context, s models.Session) ([]models.Resident, error) {
			gotSubject = s.Subject
			return testResidents, nil
		},
	}))

	rec := serve(router, withSession(t, httptest.NewRequest(http.MethodGet, "/resident", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana@condo.ao", gotSubject)
	body := rec.Body.String()
	assert.Contains(t, body, "Ana Silva")
	assert.Contains(t, body, "Beto Costa")
	assert.Contains(t, body, `action="/resident/1/inactivate"`)
	assert.NotContains(t, body, `action="/resident/2/inactivate"`)
}

func TestResidents_ListFailureKeepsPage(t *testing.T) {
	router := newTestRouter(t, residentServices(&fakeResidentService{
		list: func(context.Context, models.Session) ([]models.Resident, error) {
			return nil, &adapter.NetworkError{Op: adapter.OpListResidents, Err: errors.New("timeout")}
		},
	}))

	rec := serve(router, withSession(t, httptest.NewRequest(http.MethodGet, "/resident", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), service.MsgBackendUnreachable)
}

func TestResidents_LostTokenRedirectsToLogin(t *testing.T) {
	router := newTestRouter(t, residentServices(&fakeResidentService{
		list: func(context.Context, models.Session) ([]models.Resident, error) {
			return nil, cache.ErrPreconditionNotMet
		},
	}))

	rec := serve(router, withSession(t, httptest.NewRequest(http.MethodGet, "/resident", nil)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestCreateResident_Success(t *testing.T) {
	var got models.NewResident
	router := newTestRouter(t, residentServices(&fakeResidentService{
		create: func(_ context.Context, _ models.Session, r models.NewResident) (models.Resident, error) {
			got = r
			return models.Resident{ID: 3}, nil
		},
	}))

	rec := serve(router, withSession(t, postForm("/resident", url.Values{
		"name":        {" Carla "},
		"houseNumber": {"C3"},
		"contact":     {"923000333"},
		"email":       {"carla@condo.ao"},
		"bi":          {"003"},
	})))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	path, ok, _ := flash(t, rec)
	assert.Equal(t, "/resident", path)
	assert.Equal(t, msgResidentCreated, ok)
	assert.Equal(t, models.NewResident{Name: "Carla", HouseNumber: "C3", Contact: "923000333",
		Email: "carla@condo.ao", BI: "003"}, got)
}

func TestCreateResident_DuplicateHouseNumber(t *testing.T) {
	router := newTestRouter(t, residentServices(&fakeResidentService{
		create: func(context.Context, models.Session, models.NewResident) (models.Resident, error) {
			return models.Resident{}, validators.FieldErrors{validators.FieldHouseNumber: service.MsgHouseNumberTaken}
		},
	}))

	rec := serve(router, withSession(t, postForm("/resident", url.Values{"name": {"Carla"}, "houseNumber": {"A1"}})))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, service.MsgHouseNumberTaken)
	assert.Contains(t, body, `value="Carla"`)
}

func TestEditResident(t *testing.T) {
	router := newTestRouter(t, residentServices(&fakeResidentService{}))

	rec := serve(router, withSession(t, httptest.NewRequest(http.MethodGet, "/resident/2", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Beto Costa"`)

	rec = serve(router, withSession(t, httptest.NewRequest(http.MethodGet, "/resident/99", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, withSession(t, httptest.NewRequest(http.MethodGet, "/resident/abc", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateResident_KeepsRoles(t *testing.T) {
	var gotID int64
	var got models.ResidentUpdate
	router := newTestRouter(t, residentServices(&fakeResidentService{
		update: func(_ context.Context, _ models.Session, id int64, u models.ResidentUpdate) error {
			gotID, got = id, u
			return nil
		},
	}))

	rec := serve(router, withSession(t, postForm("/resident/1", url.Values{
		"name": {"Ana S."}, "contact": {"923000111"}, "bi": {"001"}, "email": {"ana@condo.ao"}, "active": {"true"},
	})))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, int64(1), gotID)
	assert.Equal(t, []string{models.RoleAdmin}, got.Roles)
	assert.True(t, got.Active)

	rec = serve(router, withSession(t, postForm("/resident/2", url.Values{"name": {"Beto"}})))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{models.RoleResident}, got.Roles)
	assert.False(t, got.Active)
}

func TestDeleteResident_ShowsBackendDeterminedOutcome(t *testing.T) {
	router := newTestRouter(t, residentServices(&fakeResidentService{
		delete: func(_ context.Context, _ models.Session, id int64) (models.DeleteOutcome, error) {
			assert.Equal(t, int64(2), id)
			return models.DeleteOutcome{BackendDetermined: true, Message: service.MsgDeleteOutcome}, nil
		},
	}))

	rec := serve(router, withSession(t, postForm("/resident/2/delete", nil)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	_, ok, failed := flash(t, rec)
	assert.Equal(t, service.MsgDeleteOutcome, ok)
	assert.Empty(t, failed)
}

func TestDeleteResident_Failure(t *testing.T) {
	router := newTestRouter(t, residentServices(&fakeResidentService{
		delete: func(context.Context, models.Session, int64) (models.DeleteOutcome, error) {
			return models.DeleteOutcome{}, &adapter.APIError{Status: http.StatusConflict, Message: "Morador com pagamentos", Structured: true}
		},
	}))

	rec := serve(router, withSession(t, postForm("/resident/2/delete", nil)))

	_, _, failed := flash(t, rec)
	assert.Equal(t, "Morador com pagamentos", failed)
}

func TestInactivateResident(t *testing.T) {
	var got models.Inactivation
	router := newTestRouter(t, residentServices(&fakeResidentService{
		inactivate: func(_ context.Context, _ models.Session, req models.Inactivation) error {
			got = req
			if req.ReasonForInactivation == "" {
				return validators.FieldErrors{validators.FieldReason: "O motivo da inativação é obrigatório"}
			}
			return nil
		},
	}))

	rec := serve(router, withSession(t, postForm("/resident/1/inactivate", url.Values{"reasonForInactivation": {"mudou-se"}})))
	_, ok, _ := flash(t, rec)
	assert.Equal(t, msgResidentInactivated, ok)
	assert.Equal(t, models.Inactivation{ID: 1, ReasonForInactivation: "mudou-se"}, got)

	rec = serve(router, withSession(t, postForm("/resident/1/inactivate", nil)))
	_, _, failed := flash(t, rec)
	assert.Equal(t, "O motivo da inativação é obrigatório", failed)
}
