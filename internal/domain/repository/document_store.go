package repository

import "context"

// Claves lógicas fijas del almacén de documentos.
const (
	KeyProducts = "products"
	KeyClients  = "clients"
	KeySales    = "sales"
	KeyUsers    = "users"
)

// DocumentStore puerto del almacén clave-valor de documentos JSON (memoria, Badger, Redis, PostgreSQL, SQLite).
// Los stores de inventario, clientes, ventas y usuarios se cargan al iniciar y se guardan tras cada mutación.
type DocumentStore interface {
	// Get decodifica en dst el documento guardado bajo key. found=false si la clave no existe.
	Get(ctx context.Context, key string, dst interface{}) (found bool, err error)
	// Set serializa value y lo guarda bajo key (reemplaza el documento completo).
	Set(ctx context.Context, key string, value interface{}) error
	Close() error
}
