// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ui

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/MKhiriev/condo-dashboard/models"
)

// CurrencySymbol is appended to every amount.
const CurrencySymbol = "Kz"

// YearOptionCount is how many years the year selectors offer, counting back
// from the current one.
const YearOptionCount = 4

var printer = message.NewPrinter(language.MustParse("pt-AO"))

// Currency formats v as an amount in kwanza with two decimals and pt-AO
// digit grouping, e.g. "12 500,00 Kz".
func Currency(v float64) string {
	return printer.Sprint(number.Decimal(v, number.Scale(2))) + " " + CurrencySymbol
}

// Percent formats a backend percentage (already multiplied by 100).
func Percent(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(1))) + "%"
}

// MonthName returns the Portuguese name of month (1-12), or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > len(models.StatusMonths) {
		return ""
	}
	return models.StatusMonths[month-1]
}

// BillingMonthName translates a billing month identifier ("MARCH") to its
// display name ("Março"). Unknown identifiers are returned unchanged.
func BillingMonthName(m string) string {
	for i, b := range models.BillingMonths {
		if b == m {
			return models.StatusMonths[i]
		}
	}
	return m
}

// YearOptions returns the selectable years, newest first.
func YearOptions(now time.Time) []int {
	years := make([]int, YearOptionCount)
	for i := range years {
		years[i] = now.Year() - i
	}
	return years
}

// MonthOption is one entry of a month selector.
type MonthOption struct {
	Value int
	Label string
}

// MonthOptions returns January to December.
func MonthOptions() []MonthOption {
	opts := make([]MonthOption, 0, len(models.StatusMonths))
	for i, name := range models.StatusMonths {
		opts = append(opts, MonthOption{Value: i + 1, Label: name})
	}
	return opts
}

// OptionalInt renders a filter value for a query string; nil is "".
func OptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// SameInt reports whether the optional filter v is set to want.
func SameInt(v *int, want int) bool {
	return v != nil && *v == want
}
