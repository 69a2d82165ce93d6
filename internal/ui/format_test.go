// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/condo-dashboard/internal/utils"
)

// digits drops grouping separators so assertions do not depend on the
// exact space character the locale uses.
func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '-' {
			return r
		}
		return -1
	}, s)
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: "0,00"},
		{name: "fee", value: 5000, want: "5000,00"},
		{name: "cents", value: 1234567.5, want: "1234567,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(tt.value)

			assert.True(t, strings.HasSuffix(got, " Kz"), got)
			assert.Equal(t, tt.want, digits(got))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "25%", Percent(25))
	assert.True(t, strings.HasSuffix(Percent(12.5), "%"))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", MonthName(1))
	assert.Equal(t, "Dezembro", MonthName(12))
	assert.Empty(t, MonthName(0))
	assert.Empty(t, MonthName(13))
}

func TestBillingMonthName(t *testing.T) {
	assert.Equal(t, "Março", BillingMonthName("MARCH"))
	assert.Equal(t, "SOMEDAY", BillingMonthName("SOMEDAY"))
}

func TestYearOptions(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []int{2025, 2024, 2023, 2022}, YearOptions(now))
}

func TestMonthOptions(t *testing.T) {
	opts := MonthOptions()

	assert.Len(t, opts, 12)
	assert.Equal(t, MonthOption{Value: 3, Label: "Março"}, opts[2])
}

func TestOptionalInt(t *testing.T) {
	assert.Empty(t, OptionalInt(nil))
	assert.Equal(t, "2025", OptionalInt(utils.IntPtr(2025)))
	assert.True(t, SameInt(utils.IntPtr(3), 3))
	assert.False(t, SameInt(nil, 3))
}
