// Package docstore implementa los stores de dominio (inventario, clientes, ventas, usuarios)
// como colecciones en memoria cargadas desde un repository.DocumentStore al iniciar y
// guardadas completas tras cada mutación.
package docstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// load decodifica la colección key en dst. Una clave ausente es una colección vacía.
func load(ctx context.Context, doc repository.DocumentStore, key string, dst interface{}) error {
	if _, err := doc.Get(ctx, key, dst); err != nil {
		return fmt.Errorf("docstore: cargar %s: %w", key, err)
	}
	return nil
}

// save guarda la colección completa bajo key.
func save(ctx context.Context, doc repository.DocumentStore, key string, value interface{}) error {
	if err := doc.Set(ctx, key, value); err != nil {
		return fmt.Errorf("docstore: guardar %s: %w", key, err)
	}
	return nil
}

// compact descarta las entradas null de una colección persistida.
func compact[T any](items []*T) []*T {
	out := items[:0]
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
