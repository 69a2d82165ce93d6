// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ui

import (
	"time"

	"github.com/MKhiriev/condo-dashboard/internal/validators"
	"github.com/MKhiriev/condo-dashboard/models"
)

// Page is the data every template receives. Content holds the page view.
type Page struct {
	Title   string
	User    string
	Admin   bool
	Version string
	Flash   Flash
	Content any
}

// Flash is a one-shot notice carried on a redirect.
type Flash struct {
	OK  string
	Err string
}

type LoginView struct {
	Email  string
	Error  string
	Errors validators.FieldErrors
}

type HomeView struct {
	Overview models.Overview
	Year     int
	Years    []int
}

type ResidentsView struct {
	Residents []models.Resident
	Form      models.NewResident
	Errors    validators.FieldErrors
	LoadErr   string
}

type ResidentEditView struct {
	Resident models.Resident
	Update   models.ResidentUpdate
	Errors   validators.FieldErrors
}

type PaymentsView struct {
	Payments      []models.Payment
	Residents     []models.Resident
	Year          *int
	Month         *int
	Years         []int
	Months        []MonthOption
	BillingMonths []string
	Form          models.PaymentForm
	Errors        validators.FieldErrors
	Now           time.Time
	LoadErr       string
}

type PaymentDetailView struct {
	Payment  models.Payment
	Update   models.PaymentUpdate
	Editable bool
	Errors   validators.FieldErrors
	MaxProof string
}

type DebtorsView struct {
	Debtors     []models.OverduePayment
	CurrentYear int
	Year    *int
	Month   *int
	Years   []int
	Months  []MonthOption
	LoadErr string
}

type DebtorDetailView struct {
	Debtor      models.OverduePayment
	Years       []models.OverdueYear
	CurrentYear int
}

// Where a debt payment form returns to when the payment fails.
const (
	DebtFromList   = "list"
	DebtFromDetail = "detail"
)

// DebtPaymentForm is the inline "Pagar" form of a debtor.
type DebtPaymentForm struct {
	ResidentID    int64
	Year          int
	MonthlyFee    float64
	PaymentMethod string
	From          string
	Months        []DebtMonth
}

type DebtMonth struct {
	Value   string
	Checked bool
}

// NewDebtPaymentForm prefills the form with the overdue months given, which
// are expected to belong to year. The fee is taken from the first of them.
func NewDebtPaymentForm(residentID int64, year int, overdue []models.OverdueMonth, from string) DebtPaymentForm {
	form := DebtPaymentForm{
		ResidentID:    residentID,
		Year:          year,
		PaymentMethod: models.DefaultPaymentMethod,
		From:          from,
		Months:        make([]DebtMonth, 0, len(models.BillingMonths)),
	}
	owed := make(map[string]bool, len(overdue))
	for _, m := range overdue {
		owed[m.Month] = true
	}
	if len(overdue) > 0 {
		form.MonthlyFee = overdue[0].MonthlyFee
	}
	for _, m := range models.BillingMonths {
		form.Months = append(form.Months, DebtMonth{Value: m, Checked: owed[m]})
	}
	return form
}

type HistoryView struct {
	Rows    []models.ResidentPaymentStatus
	Year    int
	Years   []int
	Months  []string
	LoadErr string
}
