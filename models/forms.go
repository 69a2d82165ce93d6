// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PaymentForm is the payment registration form: one year and the months of
// that year being paid.
type PaymentForm struct {
	ResidentID    int64
	Year          int
	Months        []string
	MonthlyFee    float64
	PaymentMethod string
}

// NewPayment converts the form into the backend request body.
func (f PaymentForm) NewPayment() NewPayment {
	months := make([]PaidMonth, 0, len(f.Months))
	for _, m := range f.Months {
		months = append(months, PaidMonth{Year: f.Year, Month: m})
	}

	return NewPayment{
		ResidentID:    f.ResidentID,
		PaidMonths:    months,
		MonthlyFee:    f.MonthlyFee,
		PaymentMethod: f.PaymentMethod,
	}
}
