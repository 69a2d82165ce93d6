// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resident roles as issued by the backend.
const (
	RoleResident = "ROLE_RESIDENT"
	RoleAdmin    = "ROLE_ADMIN"
)

// DefaultResidentPassword is the initial password the backend expects for a
// newly registered resident. Residents change it on first login.
const DefaultResidentPassword = "123456"

// Resident is a registered condominium resident as returned by GET /residents.
type Resident struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	OtherName   string   `json:"otherName,omitempty"`
	HouseNumber string   `json:"houseNumber"`
	Contact     string   `json:"contact"`
	Email       string   `json:"email"`
	BI          string   `json:"bi"`
	Password    string   `json:"password,omitempty"`
	Active      bool     `json:"active"`
	Roles       []string `json:"roles"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// NewResident is the form payload for registering a resident. The server-side
// defaults (password, active flag, roles) are filled in by the API client.
type NewResident struct {
	Name        string `json:"name"`
	OtherName   string `json:"otherName,omitempty"`
	HouseNumber string `json:"houseNumber"`
	Contact     string `json:"contact"`
	Email       string `json:"email"`
	BI          string `json:"bi"`
}

// ResidentUpdate is the body of PUT /residents/{id}.
type ResidentUpdate struct {
	Name    string   `json:"name"`
	Contact string   `json:"contact"`
	BI      string   `json:"bi"`
	Email   string   `json:"email"`
	Active  bool     `json:"active"`
	Roles   []string `json:"roles"`
}

// Inactivation is the body of POST /residents/inactivate.
type Inactivation struct {
	ID                    int64  `json:"id"`
	Active                bool   `json:"active"`
	ReasonForInactivation string `json:"reasonForInactivation"`
}

// ResidentsSummary is the response of GET /residents/summary.
type ResidentsSummary struct {
	TotalRegisteredActive int64   `json:"totalRegisteredActive"`
	RegisteredPercentage  float64 `json:"registeredPercentage"`
}
