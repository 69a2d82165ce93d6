// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PaymentEditWindow is how long after PaymentDate a payment may still be
// edited or get a proof attached.
const PaymentEditWindow = 30 * 24 * time.Hour

// PaymentDateLayout is the layout of the date part of Payment.PaymentDate
// ("dd/MM/yyyy HH:mm" on the wire; only the date is significant).
const PaymentDateLayout = "02/01/2006"

// DefaultPaymentMethod is the only method the backend currently accepts.
const DefaultPaymentMethod = "TRANSFERÊNCIA"

// ErrEmptyPaymentDate is returned by Payment.PaidAt when the backend sent no date.
var ErrEmptyPaymentDate = errors.New("payment date is empty")

// PaidMonth is one month covered by a payment.
type PaidMonth struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
}

// Payment is a recorded condominium-fee payment.
type Payment struct {
	ID            int64       `json:"id"`
	ResidentID    int64       `json:"residentId"`
	BI            string      `json:"bi"`
	ResidentName  string      `json:"residentName"`
	PaidMonths    []PaidMonth `json:"paidMonths"`
	MonthlyFee    float64     `json:"monthlyFee"`
	TotalAmount   float64     `json:"totalAmount"`
	StatusPayment string      `json:"statusPayment"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentDate   string      `json:"paymentDate"`
	HasProof      bool        `json:"hasProof,omitempty"`
}

// PaidAt parses the date part of PaymentDate.
func (p Payment) PaidAt() (time.Time, error) {
	raw := strings.TrimSpace(p.PaymentDate)
	if raw == "" {
		return time.Time{}, ErrEmptyPaymentDate
	}

	datePart, _, _ := strings.Cut(raw, " ")
	t, err := time.Parse(PaymentDateLayout, datePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse payment date %q: %w", raw, err)
	}

	return t, nil
}

// Editable reports whether the payment is still inside the edit window at
// now. Payments without a parseable date are never editable.
func (p Payment) Editable(now time.Time) bool {
	paidAt, err := p.PaidAt()
	if err != nil {
		return false
	}

	return now.Sub(paidAt) <= PaymentEditWindow
}

// Year returns the year of PaymentDate, or 0 if it cannot be parsed.
func (p Payment) Year() int {
	paidAt, err := p.PaidAt()
	if err != nil {
		return 0
	}
	return paidAt.Year()
}

// EntityID implements the cache's identifiable contract.
func (p Payment) EntityID() int64 {
	return p.ID
}

// NewPayment is the body of POST /payments.
type NewPayment struct {
	ResidentID    int64       `json:"residentId"`
	PaidMonths    []PaidMonth `json:"paidMonths"`
	MonthlyFee    float64     `json:"monthlyFee"`
	PaymentMethod string      `json:"paymentMethod"`
}

// PaymentUpdate is the body of PUT /payments/{id}.
type PaymentUpdate struct {
	MonthlyFee    float64 `json:"monthlyFee"`
	PaymentMethod string  `json:"paymentMethod"`
}

// ProofFile is a payment proof uploaded as multipart field "proofFile".
type ProofFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// TotalPaid is the response of GET /payments/total-paid.
type TotalPaid struct {
	TotalPaid float64 `json:"totalPaid"`
}

// TotalDebt is the response of GET /payments/total-debt.
type TotalDebt struct {
	TotalDebt float64 `json:"totalDebt"`
}

// DebtorsSummary is the response of GET /payments/debtors-summary.
type DebtorsSummary struct {
	TotalDebtors      int64   `json:"totalDebtors"`
	DebtorsPercentage float64 `json:"debtorsPercentage"`
}
