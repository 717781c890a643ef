package repositories

import "agenda-crm/internal/models"

// Store é a porta de persistência da agenda: a coleção inteira é lida e
// gravada por completo a cada operação, nunca campo a campo. Os motores de
// regra não conhecem esta interface; só a camada de aplicação.
type Store interface {
	LoadContacts() ([]models.Contact, error)
	SaveContacts(contacts []models.Contact) error
	LoadColumns() ([]models.Column, error)
	SaveColumns(columns []models.Column) error
}
