// Package idgen genera identificadores opacos para productos, clientes, ventas y usuarios.
package idgen

import "github.com/google/uuid"

// Generator devuelve un identificador único en texto.
type Generator func() string

// UUID genera un UUID v4 aleatorio (128 bits).
func UUID() string {
	return uuid.New().String()
}

// Or devuelve g si no es nil; si no, UUID.
func Or(g Generator) Generator {
	if g == nil {
		return UUID
	}
	return g
}
