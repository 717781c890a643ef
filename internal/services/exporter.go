package services

import (
	"errors"
	"fmt"
	"time"

	"agenda-crm/internal/models"
	"agenda-crm/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ErrNothingToExport indica que o relatório diário não teria nenhuma linha.
var ErrNothingToExport = errors.New("nenhum contato foi trabalhado hoje")

// Cabeçalhos fixos da planilha exportada. Os nomes foram escolhidos para que
// uma reimportação do próprio arquivo case com os grupos de busca do
// importador (Cliente/Orgão -> clienteorgao, Âmbito -> ambito, etc).
var exportHeaders = []string{
	"Cliente/Orgão",
	"Responsável",
	"Cargo",
	"Departamento",
	"Email",
	"Telefone",
	"Cidade",
	"UF",
	"Âmbito",
	"Status Atual",
	"Observações",
	"Data Retorno",
	"Última Ação",
}

// ExportContacts gera a planilha de backup completo ou o relatório diário
// (somente contatos com a última ação registrada hoje). Devolve o arquivo
// em memória e o nome sugerido, que embute a data corrente.
func ExportContacts(contacts []models.Contact, columns []models.Column, onlyToday bool, now time.Time) (*excelize.File, string, error) {
	dateStr := utils.FormatFileDate(now)
	sheetName := "Contatos"
	fileName := fmt.Sprintf("Agenda_Fran_Backup_%s.xlsx", dateStr)

	rows := contacts
	if onlyToday {
		sheetName = "Relatório Diário"
		fileName = fmt.Sprintf("Relatorio_Diario_%s.xlsx", dateStr)

		var worked []models.Contact
		for _, c := range rows {
			if utils.IsToday(c.LastContactDate, now) {
				worked = append(worked, c)
			}
		}
		if len(worked) == 0 {
			return nil, "", ErrNothingToExport
		}
		rows = worked
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("erro ao escrever cabeçalho: %v", err)
	}

	for i, c := range rows {
		reminder := ""
		if c.ReminderDate != nil {
			reminder = utils.FormatShortDate(*c.ReminderDate)
		}
		lastAction := ""
		if c.LastContactDate != nil {
			lastAction = utils.FormatShortDate(*c.LastContactDate)
		}

		record := []interface{}{
			c.Organization,
			c.ContactName,
			c.Role,
			c.Department,
			c.Email,
			c.Phone,
			c.City,
			c.State,
			c.Scope,
			models.TranslateStatus(c.Status, columns),
			c.Notes,
			reminder,
			lastAction,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("erro ao montar planilha: %v", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &record); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("erro ao escrever linha: %v", err)
		}
	}

	return f, fileName, nil
}
