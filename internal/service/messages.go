// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/cache"
	"github.com/MKhiriev/condo-dashboard/internal/validators"
)

// User-facing messages.
const (
	MsgInvalidCredentials = "Erro ao fazer login, Credências inválidas."
	MsgBackendUnreachable = "Não foi possível contactar o servidor. Tente novamente."
	MsgSessionExpired     = "Sessão expirada. Faça login novamente."
	MsgEditWindowClosed   = "Este pagamento já não pode ser alterado (mais de 30 dias)."
	MsgInvalidForm        = "Verifique os campos do formulário."
	MsgHouseNumberTaken   = "Este número da casa já está associado a um morador activo."
	MsgDeleteOutcome      = "Pedido de remoção concluído. Se o morador tiver pagamentos, foi inativado em vez de eliminado."

	MsgCreatePaymentFailed  = "Erro ao registrar pagamento. Tente novamente."
	MsgUpdatePaymentFailed  = "Erro ao atualizar pagamento. Tente novamente."
	MsgUploadProofFailed    = "Erro ao anexar comprovativo"
	MsgCreateResidentFailed = "Erro ao registrar morador. Tente novamente."
	MsgUpdateResidentFailed = "Erro ao atualizar morador. Tente novamente."
	MsgDeleteResidentFailed = "Erro ao remover morador. Tente novamente."
	MsgInactivateFailed     = "Erro ao inativar morador. Tente novamente."
	MsgNotifyFailed         = "Erro ao enviar notificação. Tente novamente."
	MsgLoadFailed           = "Erro ao carregar dados."
	MsgLoginFailed          = "Erro ao fazer login"
)

// UserMessage turns err into the message shown next to a form or view.
// A structured backend message wins over fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	if _, ok := validators.AsFieldErrors(err); ok {
		return MsgInvalidForm
	}

	var netErr *adapter.NetworkError
	var apiErr *adapter.APIError
	switch {
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, cache.ErrPreconditionNotMet):
		return MsgSessionExpired
	case errors.Is(err, ErrEditWindowClosed):
		return MsgEditWindowClosed
	case errors.As(err, &netErr):
		return MsgBackendUnreachable
	case errors.As(err, &apiErr) && apiErr.Structured:
		return apiErr.Message
	}

	return fallback
}
