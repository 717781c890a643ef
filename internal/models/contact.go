package models

import "time"

type ContactStatus string

const (
	StatusNotCalled       ContactStatus = "NOT_CALLED"
	StatusNoAnswer        ContactStatus = "NO_ANSWER"
	StatusAbsent          ContactStatus = "ABSENT"
	StatusWhatsappTalk    ContactStatus = "WHATSAPP_TALK"
	StatusEmailSent       ContactStatus = "EMAIL_SENT"
	StatusProposalSent    ContactStatus = "PROPOSAL_SENT"
	StatusReturnScheduled ContactStatus = "RETURN_SCHEDULED"
	StatusNegotiation     ContactStatus = "NEGOTIATION"
	StatusClosed          ContactStatus = "CLOSED"
	StatusDeclined        ContactStatus = "DECLINED"
	StatusNotInterested   ContactStatus = "NOT_INTERESTED"

	// Valor gravado por uma versão antiga do armazenamento; convertido
	// para NEGOTIATION no carregamento.
	legacyStatusInService ContactStatus = "IN_SERVICE"
)

var AllStatuses = []ContactStatus{
	StatusNotCalled,
	StatusNoAnswer,
	StatusAbsent,
	StatusWhatsappTalk,
	StatusEmailSent,
	StatusProposalSent,
	StatusReturnScheduled,
	StatusNegotiation,
	StatusClosed,
	StatusDeclined,
	StatusNotInterested,
}

func (s ContactStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// MigrateStatus converte valores legados para o valor atual correspondente.
func MigrateStatus(s ContactStatus) ContactStatus {
	if s == legacyStatusInService {
		return StatusNegotiation
	}
	return s
}

type Contact struct {
	ID              string        `json:"id"`
	Organization    string        `json:"organization"`
	ContactName     string        `json:"contactName"`
	Role            string        `json:"role,omitempty"`
	Department      string        `json:"department,omitempty"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone"`
	City            string        `json:"city"`
	State           string        `json:"state"`
	Scope           string        `json:"scope"`
	Status          ContactStatus `json:"status"`
	LastContactDate *time.Time    `json:"lastContactDate,omitempty"`
	ReminderDate    *time.Time    `json:"reminderDate,omitempty"`
	Notes           string        `json:"notes"`
	CreatedAt       time.Time     `json:"createdAt"`
}
