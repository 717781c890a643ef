package services

import (
	"math"
	"time"

	"agenda-crm/internal/models"
	"agenda-crm/internal/utils"
)

type PeriodStats struct {
	Calls     int `json:"calls"`
	Proposals int `json:"proposals"`
	Closed    int `json:"closed"`
}

type ActivityPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Metrics struct {
	Today          PeriodStats     `json:"today"`
	Week           PeriodStats     `json:"week"`
	Month          PeriodStats     `json:"month"`
	TotalContacts  int             `json:"totalContacts"`
	TotalClosed    int             `json:"totalClosed"`
	ConversionRate int             `json:"conversionRate"`
	Activity       []ActivityPoint `json:"activity"`
}

// Dias de histórico do gráfico de atividade.
const activityDays = 14

var callStatuses = map[models.ContactStatus]bool{
	models.StatusNoAnswer:        true,
	models.StatusAbsent:          true,
	models.StatusWhatsappTalk:    true,
	models.StatusEmailSent:       true,
	models.StatusReturnScheduled: true,
	models.StatusNotInterested:   true,
	models.StatusDeclined:        true,
}

// ComputeMetrics calcula o painel de produtividade: tentativas, propostas e
// fechamentos por dia/semana/mês (pela data da última ação), taxa de
// conversão e a série de atividade dos últimos 14 dias.
func ComputeMetrics(contacts []models.Contact, now time.Time) Metrics {
	m := Metrics{TotalContacts: len(contacts)}

	for _, c := range contacts {
		if c.Status == models.StatusClosed {
			m.TotalClosed++
		}

		// Só entram nas métricas de período contatos já trabalhados.
		if c.LastContactDate == nil {
			continue
		}

		isCall := callStatuses[c.Status]
		isProposal := c.Status == models.StatusProposalSent || c.Status == models.StatusNegotiation
		isClosed := c.Status == models.StatusClosed

		if utils.IsToday(c.LastContactDate, now) {
			bump(&m.Today, isCall, isProposal, isClosed)
		}
		if utils.IsThisWeek(c.LastContactDate, now) {
			bump(&m.Week, isCall, isProposal, isClosed)
		}
		if utils.IsThisMonth(c.LastContactDate, now) {
			bump(&m.Month, isCall, isProposal, isClosed)
		}
	}

	if m.TotalContacts > 0 {
		m.ConversionRate = int(math.Round(float64(m.TotalClosed) / float64(m.TotalContacts) * 100))
	}

	m.Activity = activitySeries(contacts, now)
	return m
}

func bump(stats *PeriodStats, isCall, isProposal, isClosed bool) {
	if isCall {
		stats.Calls++
	}
	if isProposal {
		stats.Proposals++
	}
	if isClosed {
		stats.Closed++
	}
}

// activitySeries conta as ações por dia dos últimos N dias, do mais antigo
// para o mais recente.
func activitySeries(contacts []models.Contact, now time.Time) []ActivityPoint {
	points := make([]ActivityPoint, 0, activityDays)
	for i := activityDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := 0
		for _, c := range contacts {
			if c.LastContactDate != nil && utils.SameDay(*c.LastContactDate, day) {
				count++
			}
		}
		points = append(points, ActivityPoint{Label: utils.FormatShortDate(day), Count: count})
	}
	return points
}
