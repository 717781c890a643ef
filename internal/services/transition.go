package services

import (
	"time"

	"agenda-crm/internal/models"
)

// TransitionEngine aplica as regras de mudança de status de um contato.
// Nunca modifica o contato recebido; sempre devolve uma cópia.
type TransitionEngine struct {
	now func() time.Time
}

func NewTransitionEngine() *TransitionEngine {
	return &TransitionEngine{now: time.Now}
}

func NewTransitionEngineWithClock(now func() time.Time) *TransitionEngine {
	return &TransitionEngine{now: now}
}

// ApplyTransition move o contato para newStatus e calcula os campos
// derivados:
//
//  1. A data de retorno só sobrevive em RETURN_SCHEDULED; qualquer outro
//     destino a limpa.
//  2. Em RETURN_SCHEDULED, a data fornecida (se houver) é gravada. Sem data
//     fornecida, a data anterior é descartada da mesma forma: um retorno sem
//     data agendada fica sem lembrete e nunca aparece no filtro "retornos de
//     hoje" (comportamento aceito do arrasto de cartão, que não passa pelo
//     campo de data).
//  3. A primeira ação registrada em um contato grava lastContactDate; as
//     ações seguintes nunca a alteram.
//
// Função total: qualquer contato estruturalmente válido e qualquer status
// enumerado produzem um resultado.
func (e *TransitionEngine) ApplyTransition(c models.Contact, newStatus models.ContactStatus, reminderDate *time.Time) models.Contact {
	result := c
	result.Status = newStatus

	if newStatus != models.StatusReturnScheduled {
		result.ReminderDate = nil
	} else if reminderDate != nil {
		d := *reminderDate
		result.ReminderDate = &d
	} else {
		result.ReminderDate = nil
	}

	if newStatus != models.StatusNotCalled && c.LastContactDate == nil {
		now := e.now()
		result.LastContactDate = &now
	}

	return result
}

// FieldEdit carrega os campos editáveis da tela de detalhe. Ponteiros nil
// significam "não alterar".
type FieldEdit struct {
	ContactName *string
	Role        *string
	Department  *string
	Email       *string
	Notes       *string
}

// ApplyFieldEdit sobrepõe os campos fornecidos sem tocar em status nem nas
// datas derivadas.
func (e *TransitionEngine) ApplyFieldEdit(c models.Contact, edit FieldEdit) models.Contact {
	result := c
	if edit.ContactName != nil {
		result.ContactName = *edit.ContactName
	}
	if edit.Role != nil {
		result.Role = *edit.Role
	}
	if edit.Department != nil {
		result.Department = *edit.Department
	}
	if edit.Email != nil {
		result.Email = *edit.Email
	}
	if edit.Notes != nil {
		result.Notes = *edit.Notes
	}
	return result
}
