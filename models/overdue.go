// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strconv"
)

// OverdueMonth is one unpaid month of a debtor.
type OverdueMonth struct {
	Year       int     `json:"year"`
	Month      string  `json:"month"`
	MonthlyFee float64 `json:"monthlyFee"`
}

// OverduePayment aggregates the debt of one resident.
type OverduePayment struct {
	ResidentID          int64          `json:"residentId"`
	ResidentName        string         `json:"residentName"`
	ResidentEmail       string         `json:"residentEmail"`
	ResidentPhone       string         `json:"residentPhone"`
	ResidentBI          string         `json:"residentBi"`
	OverdueMonths       []OverdueMonth `json:"overdueMonths"`
	TotalDebt           float64        `json:"totalDebt"`
	Status              string         `json:"status"`
	OverdueMonthsByYear map[string]int `json:"overdueMonthsByYear"`
}

// OverdueYear groups the overdue months of one year for the detail view.
type OverdueYear struct {
	Year     int
	Months   []OverdueMonth
	TotalFee float64
}

// ByYear groups OverdueMonths by year, most recent year first.
func (o OverduePayment) ByYear() []OverdueYear {
	index := make(map[int]int)
	var groups []OverdueYear

	for _, m := range o.OverdueMonths {
		i, ok := index[m.Year]
		if !ok {
			i = len(groups)
			index[m.Year] = i
			groups = append(groups, OverdueYear{Year: m.Year})
		}
		groups[i].Months = append(groups[i].Months, m)
		groups[i].TotalFee += m.MonthlyFee
	}

	slices.SortFunc(groups, func(a, b OverdueYear) int { return b.Year - a.Year })
	return groups
}

// OverdueCount returns the number of overdue months in year as reported by
// the backend, falling back to counting OverdueMonths.
func (o OverduePayment) OverdueCount(year int) int {
	if n, ok := o.OverdueMonthsByYear[strconv.Itoa(year)]; ok {
		return n
	}

	n := 0
	for _, m := range o.OverdueMonths {
		if m.Year == year {
			n++
		}
	}
	return n
}
