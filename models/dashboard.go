// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Widget is one independently loaded piece of a screen. Err is set when the
// load failed; Value is then the zero value.
type Widget[T any] struct {
	Value T
	Err   error
}

// OK reports whether the widget loaded.
func (w Widget[T]) OK() bool {
	return w.Err == nil
}

// Overview is the home screen.
type Overview struct {
	TotalPaid        Widget[TotalPaid]
	TotalDebt        Widget[TotalDebt]
	DebtorsSummary   Widget[DebtorsSummary]
	ResidentsSummary Widget[ResidentsSummary]
	PaymentStatus    Widget[[]ResidentPaymentStatus]
}

// DeleteOutcome describes a resident deletion. The backend may have
// inactivated the resident instead; BackendDetermined is always true since
// the response cannot tell.
type DeleteOutcome struct {
	BackendDetermined bool
	Message           string
}
