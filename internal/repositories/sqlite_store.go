package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"agenda-crm/internal/models"
)

// Chaves herdadas do formato antigo de armazenamento; mantidas para que um
// banco existente continue legível.
const (
	contactsKey = "agenda_fran_contacts"
	configKey   = "agenda_fran_config"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) loadBlob(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading key %s: %v", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) saveBlob(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("error writing key %s: %v", key, err)
	}
	return nil
}

// LoadContacts carrega a coleção completa. Banco vazio devolve coleção
// vazia. Statuses legados são convertidos na leitura.
func (s *SQLiteStore) LoadContacts() ([]models.Contact, error) {
	blob, err := s.loadBlob(contactsKey)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []models.Contact{}, nil
	}

	var contacts []models.Contact
	if err := json.Unmarshal(blob, &contacts); err != nil {
		return nil, fmt.Errorf("error decoding contacts: %v", err)
	}

	for i := range contacts {
		contacts[i].Status = models.MigrateStatus(contacts[i].Status)
	}
	return contacts, nil
}

func (s *SQLiteStore) SaveContacts(contacts []models.Contact) error {
	blob, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("error encoding contacts: %v", err)
	}
	return s.saveBlob(contactsKey, blob)
}

// LoadColumns carrega a configuração das colunas do quadro. Configurações
// gravadas por versões sem as colunas mais novas recebem os padrões que
// faltam, preservando as personalizações existentes.
func (s *SQLiteStore) LoadColumns() ([]models.Column, error) {
	blob, err := s.loadBlob(configKey)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return models.DefaultColumns(), nil
	}

	var columns []models.Column
	if err := json.Unmarshal(blob, &columns); err != nil {
		return nil, fmt.Errorf("error decoding columns config: %v", err)
	}

	hasNewCols := false
	for _, col := range columns {
		if col.ID == models.StatusWhatsappTalk ||
			col.ID == models.StatusProposalSent ||
			col.ID == models.StatusDeclined {
			hasNewCols = true
			break
		}
	}

	if !hasNewCols {
		existing := make(map[models.ContactStatus]bool, len(columns))
		for _, col := range columns {
			existing[col.ID] = true
		}
		for _, def := range models.DefaultColumns() {
			if !existing[def.ID] {
				columns = append(columns, def)
			}
		}
	}

	return columns, nil
}

func (s *SQLiteStore) SaveColumns(columns []models.Column) error {
	blob, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("error encoding columns config: %v", err)
	}
	return s.saveBlob(configKey, blob)
}
