package services

import (
	"testing"
	"time"

	"agenda-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardContacts() []models.Contact {
	reminderToday := fixedTime
	reminderOther := fixedTime.AddDate(0, 0, 3)
	return []models.Contact{
		{ID: "1", Organization: "Zeta", City: "São Paulo", State: "SP", Scope: "Federal", Status: models.StatusNoAnswer},
		{ID: "2", Organization: "Águia", City: "Rio", State: "RJ", Scope: "Municipal", Status: models.StatusNoAnswer},
		{ID: "3", Organization: "Beta", City: "Campinas", State: "SP", Scope: "Federal", Status: models.StatusNegotiation},
		{ID: "4", Organization: "Novo", City: "Santos", State: "SP", Scope: "Privado", Status: models.StatusNotCalled},
		{ID: "5", Organization: "Retorno Hoje", ContactName: "Ana", Scope: "Estadual", Status: models.StatusReturnScheduled, ReminderDate: &reminderToday},
		{ID: "6", Organization: "Retorno Depois", Scope: "Estadual", Status: models.StatusReturnScheduled, ReminderDate: &reminderOther},
		{ID: "7", Organization: "Sem Lembrete", Scope: "Estadual", Status: models.StatusReturnScheduled},
	}
}

func TestGroupByColumns(t *testing.T) {
	contacts := boardContacts()
	columns := models.DefaultColumns()

	board := GroupByColumns(contacts, columns)
	require.Len(t, board, len(columns))

	byStatus := make(map[models.ContactStatus]BoardColumn)
	for _, col := range board {
		byStatus[col.Column.ID] = col
	}

	t.Run("cada contato em exatamente uma coluna", func(t *testing.T) {
		total := 0
		for _, col := range board {
			total += len(col.Contacts)
		}
		// O contato NOT_CALLED fica fora do quadro.
		assert.Equal(t, len(contacts)-1, total)
	})

	t.Run("ordem alfabética com colação pt-BR", func(t *testing.T) {
		col := byStatus[models.StatusNoAnswer]
		require.Len(t, col.Contacts, 2)
		// "Águia" vem antes de "Zeta" apesar do acento.
		assert.Equal(t, "Águia", col.Contacts[0].Organization)
		assert.Equal(t, "Zeta", col.Contacts[1].Organization)
	})

	t.Run("colunas vazias permanecem no quadro", func(t *testing.T) {
		assert.Empty(t, byStatus[models.StatusClosed].Contacts)
	})
}

func TestFilterContacts(t *testing.T) {
	contacts := boardContacts()

	t.Run("busca por órgão sem distinção de caixa", func(t *testing.T) {
		result := FilterContacts(contacts, "zeta")
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("busca por âmbito", func(t *testing.T) {
		result := FilterContacts(contacts, "federal")
		assert.Len(t, result, 2)
	})

	t.Run("busca por UF", func(t *testing.T) {
		result := FilterContacts(contacts, "rj")
		require.Len(t, result, 1)
		assert.Equal(t, "2", result[0].ID)
	})

	t.Run("busca por responsável", func(t *testing.T) {
		result := FilterContacts(contacts, "ana")
		require.Len(t, result, 1)
		assert.Equal(t, "5", result[0].ID)
	})

	t.Run("consulta vazia devolve tudo", func(t *testing.T) {
		assert.Len(t, FilterContacts(contacts, "  "), len(contacts))
	})
}

func TestDueToday(t *testing.T) {
	contacts := boardContacts()

	result := DueToday(contacts, fixedTime)
	require.Len(t, result, 1)
	assert.Equal(t, "5", result[0].ID)

	t.Run("retorno sem lembrete nunca vence", func(t *testing.T) {
		for _, c := range result {
			assert.NotEqual(t, "7", c.ID)
		}
	})

	t.Run("status diferente não vence mesmo com lembrete de hoje", func(t *testing.T) {
		reminder := fixedTime
		other := []models.Contact{{ID: "x", Status: models.StatusNoAnswer, ReminderDate: &reminder}}
		assert.Empty(t, DueToday(other, fixedTime))
	})
}

func TestGroupByScope(t *testing.T) {
	contacts := boardContacts()

	groups := GroupByScope(contacts)
	require.Len(t, groups, 4)

	scopes := make([]string, len(groups))
	for i, g := range groups {
		scopes[i] = g.Scope
	}
	assert.Equal(t, []string{"Estadual", "Federal", "Municipal", "Privado"}, scopes)

	t.Run("âmbito vazio cai em Geral", func(t *testing.T) {
		result := GroupByScope([]models.Contact{{ID: "1", Organization: "A"}})
		require.Len(t, result, 1)
		assert.Equal(t, "Geral", result[0].Scope)
	})
}

func TestDueTodayUsesCalendarDay(t *testing.T) {
	lateTonight := time.Date(fixedTime.Year(), fixedTime.Month(), fixedTime.Day(), 23, 30, 0, 0, time.Local)
	contacts := []models.Contact{
		{ID: "1", Status: models.StatusReturnScheduled, ReminderDate: &lateTonight},
	}
	assert.Len(t, DueToday(contacts, fixedTime), 1)
}
