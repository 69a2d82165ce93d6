// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/condo-dashboard/models"
)

// Form field names, as posted by the dashboard forms.
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldName          = "name"
	FieldOtherName     = "otherName"
	FieldHouseNumber   = "houseNumber"
	FieldContact       = "contact"
	FieldBI            = "bi"
	FieldID            = "id"
	FieldResidentID    = "residentId"
	FieldYear          = "year"
	FieldMonths        = "months"
	FieldMonthlyFee    = "monthlyFee"
	FieldPaymentMethod = "paymentMethod"
	FieldReason        = "reasonForInactivation"
	FieldProofFile     = "proofFile"
)

const (
	minPasswordLen    = 6
	minContactLen     = 9
	minEditNameLen    = 2
	minPaymentYear    = 2000
	MaxProofFileBytes = 10 << 20
)

var contactPattern = regexp.MustCompile(`^\+?\d+$`)

// MsgProofTooLarge is reported for proof files over MaxProofFileBytes.
var MsgProofTooLarge = "O arquivo excede o limite de " + humanize.IBytes(MaxProofFileBytes)

// FormValidator validates every dashboard form. It returns FieldErrors
// holding one message per failing field.
type FormValidator struct{}

// NewFormValidator returns the dashboard form Validator.
func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.NewResident:
		return v.validateNewResident(value, fields...)
	case *models.NewResident:
		return v.validateNewResident(*value, fields...)

	case models.ResidentUpdate:
		return v.validateResidentUpdate(value, fields...)
	case *models.ResidentUpdate:
		return v.validateResidentUpdate(*value, fields...)

	case models.Inactivation:
		return v.validateInactivation(value, fields...)
	case *models.Inactivation:
		return v.validateInactivation(*value, fields...)

	case models.PaymentForm:
		return v.validatePaymentForm(value, fields...)
	case *models.PaymentForm:
		return v.validatePaymentForm(*value, fields...)

	case models.PaymentUpdate:
		return v.validatePaymentUpdate(value, fields...)
	case *models.PaymentUpdate:
		return v.validatePaymentUpdate(*value, fields...)

	case models.ProofFile:
		return v.validateProofFile(value, fields...)
	case *models.ProofFile:
		return v.validateProofFile(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				errs.add(f, "Email é obrigatório")
			} else if !validEmail(req.Email) {
				errs.add(f, "Digite um email válido")
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < minPasswordLen {
				errs.add(f, "A senha deve ter no mínimo 6 caracteres")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *FormValidator) validateNewResident(r models.NewResident, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldHouseNumber, FieldContact, FieldEmail, FieldBI}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				errs.add(f, "O nome é obrigatório")
			}
		case FieldOtherName:
		case FieldHouseNumber:
			if strings.TrimSpace(r.HouseNumber) == "" {
				errs.add(f, "O número da casa é obrigatório")
			}
		case FieldContact:
			checkContact(errs, r.Contact)
			if r.Contact != "" && !contactPattern.MatchString(r.Contact) {
				errs.add(f, "O contacto deve conter apenas números")
			}
		case FieldEmail:
			if strings.TrimSpace(r.Email) == "" {
				errs.add(f, "O email é obrigatório")
			} else if !validEmail(r.Email) {
				errs.add(f, "Email inválido")
			}
		case FieldBI:
			checkBI(errs, r.BI)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *FormValidator) validateResidentUpdate(r models.ResidentUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldContact, FieldBI, FieldEmail}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < minEditNameLen {
				errs.add(f, "O nome deve ter pelo menos 2 caracteres")
			}
		case FieldContact:
			checkContact(errs, r.Contact)
		case FieldBI:
			checkBI(errs, r.BI)
		case FieldEmail:
			if !validEmail(r.Email) {
				errs.add(f, "Email inválido")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *FormValidator) validateInactivation(in models.Inactivation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldReason}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldID:
			if in.ID <= 0 {
				errs.add(f, "Morador inválido")
			}
		case FieldReason:
			if strings.TrimSpace(in.ReasonForInactivation) == "" {
				errs.add(f, "O motivo da inativação é obrigatório")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *FormValidator) validatePaymentForm(p models.PaymentForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResidentID, FieldYear, FieldMonths, FieldMonthlyFee, FieldPaymentMethod}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldResidentID:
			if p.ResidentID < 0 {
				errs.add(f, "O morador é obrigatório")
			}
		case FieldYear:
			if p.Year < minPaymentYear {
				errs.add(f, "O ano deve ser maior ou igual a 2000")
			}
		case FieldMonths:
			if len(p.Months) == 0 {
				errs.add(f, "Selecione pelo menos um mês")
			}
			for _, m := range p.Months {
				if !models.IsBillingMonth(m) {
					errs.add(f, "Mês inválido: "+m)
				}
			}
		case FieldMonthlyFee:
			checkFee(errs, p.MonthlyFee)
		case FieldPaymentMethod:
			checkPaymentMethod(errs, p.PaymentMethod)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *FormValidator) validatePaymentUpdate(p models.PaymentUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMonthlyFee, FieldPaymentMethod}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldMonthlyFee:
			checkFee(errs, p.MonthlyFee)
		case FieldPaymentMethod:
			checkPaymentMethod(errs, p.PaymentMethod)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *FormValidator) validateProofFile(file models.ProofFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProofFile}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldProofFile:
			switch {
			case len(file.Content) == 0:
				errs.add(f, "Por favor, selecione um arquivo")
			case len(file.Content) > MaxProofFileBytes:
				errs.add(f, MsgProofTooLarge)
			case !acceptedProof(file):
				errs.add(f, "O comprovativo deve ser uma imagem ou um PDF")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func checkContact(errs FieldErrors, contact string) {
	if utf8.RuneCountInString(contact) < minContactLen {
		errs.add(FieldContact, "O contacto deve ter pelo menos 9 dígitos")
	}
}

func checkBI(errs FieldErrors, bi string) {
	if strings.TrimSpace(bi) == "" {
		errs.add(FieldBI, "O BI é obrigatório")
	}
}

func checkFee(errs FieldErrors, fee float64) {
	if fee < 0 {
		errs.add(FieldMonthlyFee, "A mensalidade deve ser maior ou igual a 0")
	}
}

func checkPaymentMethod(errs FieldErrors, method string) {
	if strings.TrimSpace(method) == "" {
		errs.add(FieldPaymentMethod, "O método de pagamento é obrigatório")
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == strings.TrimSpace(email)
}

// acceptedProof mirrors the upload input's accept="image/*,.pdf".
func acceptedProof(file models.ProofFile) bool {
	if strings.HasPrefix(file.ContentType, "image/") || file.ContentType == "application/pdf" {
		return true
	}
	return strings.EqualFold(filepath.Ext(file.FileName), ".pdf")
}
