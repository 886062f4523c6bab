package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de la tienda.
// Stock es la única fuente de verdad de disponibilidad; nunca es negativo.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	CostPrice   decimal.Decimal `json:"costPrice"` // precio de costo
	SalePrice   decimal.Decimal `json:"salePrice"` // precio de venta
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt,omitempty"`
	UpdatedAt   time.Time       `json:"updatedAt,omitempty"`
}

// Clone devuelve una copia independiente del producto.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
