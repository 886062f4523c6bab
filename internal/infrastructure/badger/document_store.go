// Package badger implementa el almacén de documentos sobre BadgerDB (embebido, backend por defecto).
//
// Cada clave lógica (products, clients, sales, users) es una entrada de Badger
// cuyo valor es el documento JSON completo.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// Config configuración de la instancia de BadgerDB.
type Config struct {
	// Path directorio de los archivos. Ignorado si InMemory.
	Path string
	// InMemory sin persistencia en disco (tests).
	InMemory bool
	// SyncWrites escritura síncrona; true en producción.
	SyncWrites bool
}

// DocumentStore adaptador DocumentStore sobre *badger.DB.
type DocumentStore struct {
	db *badger.DB
}

// Open abre (o crea) la base y devuelve el almacén. El llamador debe invocar Close.
func Open(cfg Config) (*DocumentStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger: path requerido para base persistente")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("badger: crear directorio %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: abrir base: %w", err)
	}
	return &DocumentStore{db: db}, nil
}

// Get decodifica el documento key en dst.
func (s *DocumentStore) Get(_ context.Context, key string, dst interface{}) (bool, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("badger: leer %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("badger: decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set serializa value y lo guarda bajo key en una transacción.
func (s *DocumentStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("badger: serializar %s: %w", key, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	}); err != nil {
		return fmt.Errorf("badger: guardar %s: %w", key, err)
	}
	return nil
}

// Close cierra la base.
func (s *DocumentStore) Close() error {
	return s.db.Close()
}
