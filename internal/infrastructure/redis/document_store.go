// Package redis implementa el almacén de documentos sobre Redis (un string JSON por clave lógica).
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// Options conexión y prefijo de claves.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // ej. "tienda:" -> tienda:products
}

// DocumentStore adaptador DocumentStore sobre go-redis.
type DocumentStore struct {
	client *redis.Client
	prefix string
}

// New crea el cliente y verifica la conexión con PING.
func New(ctx context.Context, opts Options) (*DocumentStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return NewFromClient(client, opts.Prefix), nil
}

// NewFromClient envuelve un cliente existente.
func NewFromClient(client *redis.Client, prefix string) *DocumentStore {
	return &DocumentStore{client: client, prefix: prefix}
}

// Get decodifica el documento key en dst.
func (s *DocumentStore) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: leer %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("redis: decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set serializa value y lo guarda sin expiración.
func (s *DocumentStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: serializar %s: %w", key, err)
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis: guardar %s: %w", key, err)
	}
	return nil
}

// Close cierra el cliente.
func (s *DocumentStore) Close() error {
	return s.client.Close()
}
