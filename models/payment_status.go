// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// StatusPaid is the value the backend uses for a paid month.
const StatusPaid = "Pago"

// BillingMonths are the month identifiers accepted in NewPayment.PaidMonths.
var BillingMonths = []string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// StatusMonths are the keys of ResidentPaymentStatus.PaymentStatusByMonth in
// calendar order.
var StatusMonths = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// IsBillingMonth reports whether m is one of BillingMonths.
func IsBillingMonth(m string) bool {
	for _, b := range BillingMonths {
		if b == m {
			return true
		}
	}
	return false
}

// MonthLabel renders a billing month identifier for display ("JANUARY" → "January").
func MonthLabel(m string) string {
	if m == "" {
		return ""
	}
	return m[:1] + strings.ToLower(m[1:])
}

// ResidentPaymentStatus is one row of GET /dashboard/residents-payment-status.
type ResidentPaymentStatus struct {
	Name                 string            `json:"name"`
	PaymentStatusByMonth map[string]string `json:"paymentStatusByMonth"`
}

// Status returns the status of month (one of StatusMonths).
func (r ResidentPaymentStatus) Status(month string) string {
	return r.PaymentStatusByMonth[month]
}

// Paid reports whether month is marked as paid.
func (r ResidentPaymentStatus) Paid(month string) bool {
	return r.Status(month) == StatusPaid
}
