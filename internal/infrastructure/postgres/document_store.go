package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// DocumentStore almacén de documentos sobre la tabla documents (JSONB).
type DocumentStore struct {
	q     Querier
	close func()
}

// NewDocumentStore envuelve un Querier (pool o tx). No crea la tabla; ver Migrate.
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// OpenDocumentStore usa el pool, crea la tabla si no existe y cierra el pool en Close.
func OpenDocumentStore(ctx context.Context, pool *pgxpool.Pool) (*DocumentStore, error) {
	s := &DocumentStore{q: pool, close: pool.Close}
	if err := s.Migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Migrate crea la tabla documents si no existe.
func (s *DocumentStore) Migrate(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, createDocumentsTable); err != nil {
		return fmt.Errorf("crear tabla documents: %w", err)
	}
	return nil
}

// Get decodifica el documento key en dst.
func (s *DocumentStore) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	var raw []byte
	err := s.q.QueryRow(ctx, `SELECT value FROM documents WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get document %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode document %s: %w", key, err)
	}
	return true, nil
}

// Set serializa value y hace upsert del documento.
func (s *DocumentStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}
	query := `
		INSERT INTO documents (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.q.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("upsert document %s: %w", key, err)
	}
	return nil
}

// Close cierra el pool si el almacén lo abrió.
func (s *DocumentStore) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
