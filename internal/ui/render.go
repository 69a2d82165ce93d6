// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ui renders the dashboard screens from embedded html/template files.
package ui

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Page template names.
const (
	PageLogin        = "login"
	PageHome         = "home"
	PageResidents    = "residents"
	PageResidentEdit = "resident_edit"
	PagePayments     = "payments"
	PagePayment      = "payment"
	PageDebtors      = "debtors"
	PageDebtor       = "debtor"
	PageHistory      = "history"
	PageUnauthorized = "unauthorized"
	PageAdmin        = "admin"
	PageError        = "error"
)

const layoutFile = "templates/layout.html"

// ErrUnknownPage is returned by Render for a name with no template.
var ErrUnknownPage = errors.New("unknown page")

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"currency":     Currency,
	"percent":      Percent,
	"monthName":    MonthName,
	"billingMonth": BillingMonthName,
	"optInt":       OptionalInt,
	"sameInt":      SameInt,
	"debtForm":     NewDebtPaymentForm,
}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	layout, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		if _, err = t.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}

		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}

	return r, nil
}

// Render executes page name into a buffer and writes it with status.
// Nothing is written when execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
