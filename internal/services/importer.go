package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"agenda-crm/internal/models"
	"agenda-crm/internal/utils"

	"github.com/google/uuid"
)

// PlaceholderName é o nome atribuído a linhas importadas sem identificação.
const PlaceholderName = "Sem Nome"

// ErrEmptySheet indica que a planilha não tinha nenhuma linha de dados.
var ErrEmptySheet = errors.New("planilha vazia")

// CellKind distingue os tipos de valor que uma célula de planilha pode
// carregar. Para efeito de mapeamento tudo vira texto, mas o tipo original
// controla a formatação (números sem notação científica, datas em dd/mm/aaaa).
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Number: n} }

func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Date: t} }

func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("02/01/2006")
	default:
		return ""
	}
}

// Row é uma linha de planilha: um mapeamento ordenado de cabeçalho bruto
// para célula. A ordem de inserção dos cabeçalhos é preservada para que o
// casamento de colunas seja determinístico.
type Row struct {
	keys  []string
	cells map[string]Cell
}

func NewRow() *Row {
	return &Row{cells: make(map[string]Cell)}
}

func (r *Row) Set(key string, cell Cell) {
	if _, exists := r.cells[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.cells[key] = cell
}

func (r *Row) Keys() []string {
	return r.keys
}

func (r *Row) Get(key string) (Cell, bool) {
	cell, ok := r.cells[key]
	return cell, ok
}

// Importer transforma linhas brutas de planilha em contatos novos.
// Relógio e gerador de id são injetáveis para os testes.
type Importer struct {
	now   func() time.Time
	newID func() string
}

func NewImporter() *Importer {
	return &Importer{now: time.Now, newID: uuid.NewString}
}

func NewImporterWithClock(now func() time.Time, newID func() string) *Importer {
	return &Importer{now: now, newID: newID}
}

// getValue procura, na ordem dos cabeçalhos da linha, o primeiro cuja forma
// normalizada contenha algum dos termos de busca, e devolve o valor da
// célula limpo. "nan", "undefined" e vazio contam como ausente.
func getValue(row *Row, searchTerms []string) string {
	normTerms := make([]string, len(searchTerms))
	for i, term := range searchTerms {
		normTerms[i] = utils.NormalizeKey(term)
	}

	for _, key := range row.Keys() {
		normKey := utils.NormalizeKey(key)
		for _, term := range normTerms {
			if term != "" && strings.Contains(normKey, term) {
				cell, _ := row.Get(key)
				val := strings.TrimSpace(cell.String())
				lower := strings.ToLower(val)
				if lower == "nan" || lower == "undefined" || val == "" {
					return ""
				}
				return val
			}
		}
	}
	return ""
}

// MapRows converte as linhas importadas em contatos novos, todos com status
// NOT_CALLED e id recém-gerado. Linhas sem nome utilizável e sem telefone
// utilizável são descartadas. Devolve ErrEmptySheet se não houver linhas.
func (i *Importer) MapRows(rows []*Row) ([]models.Contact, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	var contacts []models.Contact
	for _, row := range rows {
		orgName := getValue(row, []string{"clienteorgao", "cliente", "orgao", "empresa", "instituicao"})
		contactPerson := getValue(row, []string{"nomecontato", "contato", "responsavel"})

		// Sem nome de órgão mas com responsável: o responsável assume.
		if orgName == "" && contactPerson != "" {
			orgName = contactPerson
		}
		if orgName == "" {
			orgName = PlaceholderName
		}

		// Telefone: prioridade celular -> telefone 1 -> telefone 2.
		rawPhone := getValue(row, []string{"celular", "whatsapp", "movel"})
		if rawPhone == "" {
			rawPhone = getValue(row, []string{"telefone1", "telefone"})
		}
		if rawPhone == "" {
			rawPhone = getValue(row, []string{"telefone2"})
		}

		city := getValue(row, []string{"cidade", "municipio"})
		state := getValue(row, []string{"uf", "estado"})
		scope := getValue(row, []string{"nomeambito", "ambito", "esfera"})
		email := getValue(row, []string{"email", "e-mail", "correio"})
		dept := getValue(row, []string{"departamento", "setor", "area"})
		role := getValue(row, []string{"funcao", "cargo", "ocupacao"})
		obs := getValue(row, []string{"observacao", "obs", "notas"})

		// "GERAL" é marcador de planilha para "sem responsável específico".
		if contactPerson == "GERAL" {
			contactPerson = ""
		}
		if scope == "" {
			scope = "Geral"
		}

		// Linha sem identidade nenhuma: nem nome, nem telefone utilizável.
		if orgName == PlaceholderName && len(rawPhone) <= 5 {
			continue
		}

		contacts = append(contacts, models.Contact{
			ID:           i.newID(),
			Organization: orgName,
			ContactName:  contactPerson,
			Role:         role,
			Department:   dept,
			Email:        email,
			Phone:        rawPhone,
			City:         city,
			State:        state,
			Scope:        scope,
			Status:       models.StatusNotCalled,
			Notes:        obs,
			CreatedAt:    i.now(),
		})
	}

	return contacts, nil
}

// FilterNewByPhone remove dos contatos importados os que já existem na base,
// comparando o telefone por igualdade exata. Telefone vazio nunca casa com
// nada: a linha entra mesmo que já existam contatos sem telefone.
func FilterNewByPhone(newContacts, existing []models.Contact) []models.Contact {
	existingPhones := make(map[string]bool, len(existing))
	for _, c := range existing {
		if c.Phone != "" {
			existingPhones[c.Phone] = true
		}
	}

	result := make([]models.Contact, 0, len(newContacts))
	for _, c := range newContacts {
		if c.Phone != "" && existingPhones[c.Phone] {
			continue
		}
		result = append(result, c)
	}
	return result
}
