// Package sqlite implementa el almacén de documentos sobre un único archivo SQLite.
//
// Esquema: documents(key TEXT PRIMARY KEY, value TEXT, updated_at TEXT).
// Se abre en modo WAL; el esquema se crea al abrir.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore adaptador DocumentStore sobre database/sql + go-sqlite3.
type DocumentStore struct {
	db *sql.DB
}

// Open abre (o crea) la base en dbPath. Usar ":memory:" para una base en memoria.
func Open(dbPath string) (*DocumentStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: crear directorio: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir base: %w", err)
	}
	// Una sola conexión: con ":memory:" cada conexión sería una base distinta
	db.SetMaxOpenConns(1)

	s := &DocumentStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migrar esquema: %w", err)
	}
	return s, nil
}

func (s *DocumentStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

// Get decodifica el documento key en dst.
func (s *DocumentStore) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: leer %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("sqlite: decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set serializa value y hace upsert de la fila key.
func (s *DocumentStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("sqlite: serializar %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite: guardar %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *DocumentStore) Close() error {
	return s.db.Close()
}
