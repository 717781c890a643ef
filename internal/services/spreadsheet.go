package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseImportFile lê um arquivo tabular (xlsx/xlsm ou csv) e devolve as
// linhas de dados como mapeamentos cabeçalho->célula. A primeira linha é
// sempre o cabeçalho. Falhas de leitura do arquivo inteiro retornam um
// único erro; células individuais nunca falham.
func ParseImportFile(filename string, r io.Reader) ([]*Row, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".csv" {
		return parseCSV(r)
	}
	return parseExcel(r)
}

func parseExcel(r io.Reader) ([]*Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("erro ao abrir planilha: nenhuma aba encontrada")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha: %v", err)
	}

	return buildRows(records), nil
}

func parseCSV(r io.Reader) ([]*Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler csv: %v", err)
	}

	return buildRows(records), nil
}

// buildRows monta as linhas a partir da matriz de células, preenchendo com
// vazio as células ausentes para manter o alinhamento com o cabeçalho.
func buildRows(records [][]string) []*Row {
	if len(records) < 2 {
		return nil
	}

	headers := records[0]
	rows := make([]*Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := NewRow()
		for i, header := range headers {
			if strings.TrimSpace(header) == "" {
				continue
			}
			if i < len(record) {
				row.Set(header, TextCell(record[i]))
			} else {
				row.Set(header, EmptyCell())
			}
		}
		rows = append(rows, row)
	}
	return rows
}
