// Package memory implementa el almacén de documentos en memoria (desarrollo y tests).
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore guarda cada documento serializado en JSON, igual que los backends persistentes,
// de modo que Get nunca devuelve memoria compartida con el llamador.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewDocumentStore crea un almacén vacío.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string][]byte)}
}

// Get decodifica el documento key en dst.
func (s *DocumentStore) Get(_ context.Context, key string, dst interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("memory: decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set serializa value bajo key.
func (s *DocumentStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory: serializar %s: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = raw
	s.mu.Unlock()
	return nil
}

// SetRaw guarda bytes JSON tal cual (útil para cargar datos heredados en tests).
func (s *DocumentStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	s.docs[key] = append([]byte(nil), raw...)
	s.mu.Unlock()
}

// Close no hace nada.
func (s *DocumentStore) Close() error { return nil }
