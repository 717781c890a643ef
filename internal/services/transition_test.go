package services

import (
	"testing"
	"time"

	"agenda-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(now time.Time) *TransitionEngine {
	return NewTransitionEngineWithClock(func() time.Time { return now })
}

func baseContact() models.Contact {
	return models.Contact{
		ID:           "c1",
		Organization: "ACME",
		Phone:        "11-2222-3333",
		Status:       models.StatusNotCalled,
		CreatedAt:    fixedTime.Add(-24 * time.Hour),
	}
}

func TestApplyTransition_ClearsReminderOutsideReturn(t *testing.T) {
	engine := testEngine(fixedTime)
	reminder := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	for _, status := range models.AllStatuses {
		if status == models.StatusReturnScheduled {
			continue
		}
		t.Run(string(status), func(t *testing.T) {
			c := baseContact()
			c.Status = models.StatusNoAnswer
			c.ReminderDate = &reminder

			result := engine.ApplyTransition(c, status, nil)
			assert.Equal(t, status, result.Status)
			assert.Nil(t, result.ReminderDate)
		})
	}
}

func TestApplyTransition_ReturnScheduled(t *testing.T) {
	engine := testEngine(fixedTime)

	t.Run("com data fornecida grava a data", func(t *testing.T) {
		c := baseContact()
		c.Status = models.StatusNoAnswer
		old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
		c.ReminderDate = &old

		supplied := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
		result := engine.ApplyTransition(c, models.StatusReturnScheduled, &supplied)

		assert.Equal(t, models.StatusReturnScheduled, result.Status)
		require.NotNil(t, result.ReminderDate)
		assert.Equal(t, supplied, *result.ReminderDate)
		require.NotNil(t, result.LastContactDate)
		assert.Equal(t, fixedTime, *result.LastContactDate)
	})

	t.Run("sem data fornecida o retorno fica sem lembrete", func(t *testing.T) {
		c := baseContact()
		old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
		c.ReminderDate = &old

		result := engine.ApplyTransition(c, models.StatusReturnScheduled, nil)
		assert.Equal(t, models.StatusReturnScheduled, result.Status)
		assert.Nil(t, result.ReminderDate)
	})
}

func TestApplyTransition_LastContactDate(t *testing.T) {
	engine := testEngine(fixedTime)

	t.Run("primeira ação grava a data", func(t *testing.T) {
		c := baseContact()
		result := engine.ApplyTransition(c, models.StatusNoAnswer, nil)
		require.NotNil(t, result.LastContactDate)
		assert.Equal(t, fixedTime, *result.LastContactDate)
	})

	t.Run("data já gravada nunca muda", func(t *testing.T) {
		c := baseContact()
		first := fixedTime.Add(-48 * time.Hour)
		c.LastContactDate = &first
		c.Status = models.StatusNoAnswer

		result := engine.ApplyTransition(c, models.StatusNegotiation, nil)
		require.NotNil(t, result.LastContactDate)
		assert.Equal(t, first, *result.LastContactDate)

		again := engine.ApplyTransition(result, models.StatusClosed, nil)
		assert.Equal(t, first, *again.LastContactDate)
	})

	t.Run("voltar para NOT_CALLED não grava data", func(t *testing.T) {
		c := baseContact()
		result := engine.ApplyTransition(c, models.StatusNotCalled, nil)
		assert.Nil(t, result.LastContactDate)
	})
}

func TestApplyTransition_DoesNotMutateInput(t *testing.T) {
	engine := testEngine(fixedTime)

	c := baseContact()
	reminder := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	c.ReminderDate = &reminder

	_ = engine.ApplyTransition(c, models.StatusClosed, nil)

	assert.Equal(t, models.StatusNotCalled, c.Status)
	require.NotNil(t, c.ReminderDate)
	assert.Equal(t, reminder, *c.ReminderDate)
	assert.Nil(t, c.LastContactDate)
}

func TestApplyTransition_ReagendamentoAposSemResposta(t *testing.T) {
	// Contato NO_ANSWER com lembrete antigo e sem última ação, agendado
	// para 01/02: status muda, lembrete atualiza, última ação é agora.
	engine := testEngine(fixedTime)

	c := baseContact()
	c.Status = models.StatusNoAnswer
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	c.ReminderDate = &old

	supplied := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
	result := engine.ApplyTransition(c, models.StatusReturnScheduled, &supplied)

	assert.Equal(t, models.StatusReturnScheduled, result.Status)
	assert.Equal(t, supplied, *result.ReminderDate)
	assert.Equal(t, fixedTime, *result.LastContactDate)
}

func TestApplyFieldEdit(t *testing.T) {
	engine := testEngine(fixedTime)

	t.Run("sobrepõe apenas os campos fornecidos", func(t *testing.T) {
		c := baseContact()
		c.ContactName = "João"
		c.Role = "Analista"
		c.Notes = "antiga"

		name := "Maria"
		notes := "nova observação"
		result := engine.ApplyFieldEdit(c, FieldEdit{ContactName: &name, Notes: &notes})

		assert.Equal(t, "Maria", result.ContactName)
		assert.Equal(t, "Analista", result.Role)
		assert.Equal(t, "nova observação", result.Notes)
	})

	t.Run("nunca toca status nem datas", func(t *testing.T) {
		c := baseContact()
		c.Status = models.StatusReturnScheduled
		reminder := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
		last := fixedTime.Add(-time.Hour)
		c.ReminderDate = &reminder
		c.LastContactDate = &last

		email := "novo@exemplo.com"
		result := engine.ApplyFieldEdit(c, FieldEdit{Email: &email})

		assert.Equal(t, models.StatusReturnScheduled, result.Status)
		assert.Equal(t, reminder, *result.ReminderDate)
		assert.Equal(t, last, *result.LastContactDate)
		assert.Equal(t, "novo@exemplo.com", result.Email)
	})

	t.Run("string vazia fornecida limpa o campo", func(t *testing.T) {
		c := baseContact()
		c.ContactName = "João"

		empty := ""
		result := engine.ApplyFieldEdit(c, FieldEdit{ContactName: &empty})
		assert.Equal(t, "", result.ContactName)
	})
}
