package services

import (
	"sort"
	"strings"
	"time"

	"agenda-crm/internal/models"
	"agenda-crm/internal/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BoardColumn é uma coluna do quadro já montada para exibição.
type BoardColumn struct {
	Column   models.Column    `json:"column"`
	Contacts []models.Contact `json:"contacts"`
}

// ScopeGroup agrupa o diretório lateral por âmbito.
type ScopeGroup struct {
	Scope    string           `json:"scope"`
	Contacts []models.Contact `json:"contacts"`
}

func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

func sortByOrganization(contacts []models.Contact, col *collate.Collator) {
	sort.SliceStable(contacts, func(i, j int) bool {
		return col.CompareString(contacts[i].Organization, contacts[j].Organization) < 0
	})
}

// GroupByColumns distribui os contatos nas colunas configuradas. Cada
// contato aparece em exatamente uma coluna (a do seu status) ou em nenhuma
// se o status não estiver configurado — NOT_CALLED fica fora do quadro por
// padrão. Dentro de cada coluna a ordem é alfabética por órgão, com
// colação pt-BR, recalculada a cada leitura.
func GroupByColumns(contacts []models.Contact, columns []models.Column) []BoardColumn {
	byStatus := make(map[models.ContactStatus][]models.Contact)
	for _, col := range columns {
		byStatus[col.ID] = []models.Contact{}
	}
	for _, c := range contacts {
		if _, ok := byStatus[c.Status]; ok {
			byStatus[c.Status] = append(byStatus[c.Status], c)
		}
	}

	col := newCollator()
	result := make([]BoardColumn, 0, len(columns))
	for _, column := range columns {
		items := byStatus[column.ID]
		sortByOrganization(items, col)
		result = append(result, BoardColumn{Column: column, Contacts: items})
	}
	return result
}

// FilterContacts aplica a busca de texto livre: substring, sem distinção de
// maiúsculas, sobre órgão, responsável, cidade, UF e âmbito.
func FilterContacts(contacts []models.Contact, query string) []models.Contact {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return contacts
	}

	var result []models.Contact
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Organization), query) ||
			strings.Contains(strings.ToLower(c.ContactName), query) ||
			strings.Contains(strings.ToLower(c.City), query) ||
			strings.Contains(strings.ToLower(c.State), query) ||
			strings.Contains(strings.ToLower(c.Scope), query) {
			result = append(result, c)
		}
	}
	return result
}

// DueToday devolve os contatos com retorno agendado para o dia de hoje.
func DueToday(contacts []models.Contact, now time.Time) []models.Contact {
	var result []models.Contact
	for _, c := range contacts {
		if c.Status == models.StatusReturnScheduled && utils.IsToday(c.ReminderDate, now) {
			result = append(result, c)
		}
	}
	return result
}

// GroupByScope monta o diretório lateral: contatos agrupados por âmbito,
// âmbitos em ordem alfabética e órgãos colacionados dentro de cada grupo.
func GroupByScope(contacts []models.Contact) []ScopeGroup {
	groups := make(map[string][]models.Contact)
	for _, c := range contacts {
		scope := c.Scope
		if scope == "" {
			scope = "Geral"
		}
		groups[scope] = append(groups[scope], c)
	}

	scopes := make([]string, 0, len(groups))
	for scope := range groups {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	col := newCollator()
	result := make([]ScopeGroup, 0, len(scopes))
	for _, scope := range scopes {
		items := groups[scope]
		sortByOrganization(items, col)
		result = append(result, ScopeGroup{Scope: scope, Contacts: items})
	}
	return result
}
