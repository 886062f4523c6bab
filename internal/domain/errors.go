package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrIndexOutOfRange   = errors.New("índice fuera de rango")
	ErrInvalidStock      = errors.New("stock inválido")
)

// ValidationError entrada faltante o inválida (sin cliente, carrito vacío, cantidad no positiva...).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError identificador de producto, cliente o venta que no existe.
type NotFoundError struct {
	Kind string // "producto", "cliente", "venta", "usuario"
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s no encontrado: %s", e.Kind, e.ID) }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError la cantidad pedida supera el stock actual.
// Al agregar al carrito se informa Available; al confirmar la venta, ProductName.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("stock insuficiente para %s", e.ProductName)
	}
	return fmt.Sprintf("stock insuficiente. Disponible: %d", e.Available)
}
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// IndexError índice de línea del carrito fuera de rango.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("índice %d fuera de rango (líneas: %d)", e.Index, e.Len)
}
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// InvalidStockError intento de fijar un stock negativo.
type InvalidStockError struct {
	ProductID string
	Stock     int
}

func (e *InvalidStockError) Error() string {
	return fmt.Sprintf("stock inválido %d para el producto %s", e.Stock, e.ProductID)
}
func (e *InvalidStockError) Unwrap() error { return ErrInvalidStock }
