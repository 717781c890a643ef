package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ConnectDatabase abre (ou cria) o arquivo SQLite local que serve de
// armazenamento chave-valor da agenda.
func ConnectDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Um único escritor lógico; sem necessidade de pool maior.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("error creating schema: %v", err)
	}

	return db, nil
}
