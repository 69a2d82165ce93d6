// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/condo-dashboard/internal/utils"
)

// Query tags. A mutation invalidates by tag, so every read under the same
// tag goes stale at once regardless of its filter parameters.
const (
	TagPayments               = "payments"
	TagPayment                = "payment"
	TagOverduePayments        = "overduePayments"
	TagOverdueByResident      = "overdueByResident"
	TagResidents              = "residents"
	TagResidentsSummary       = "residentsSummary"
	TagTotalPaid              = "totalPaid"
	TagTotalDebt              = "totalDebt"
	TagDebtorsSummary         = "debtorsSummary"
	TagResidentsPaymentStatus = "residentsPaymentStatus"
)

// Key identifies one cached read: a tag plus up to two scalar filters.
type Key struct {
	Tag    string
	Params []any
}

// NewKey builds a Key. Optional *int filters are flattened so that a nil
// filter and an explicit "all" share one entry.
func NewKey(tag string, params ...any) Key {
	flat := make([]any, 0, len(params))
	for _, p := range params {
		switch v := p.(type) {
		case *int:
			flat = append(flat, utils.FormatOptionalInt(v))
		case *int64:
			if v == nil {
				flat = append(flat, "all")
			} else {
				flat = append(flat, *v)
			}
		default:
			flat = append(flat, v)
		}
	}
	return Key{Tag: tag, Params: flat}
}

func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Tag)
	for _, p := range k.Params {
		b.WriteByte('|')
		fmt.Fprint(&b, p)
	}
	return b.String()
}
