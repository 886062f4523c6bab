package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemResponse línea de carrito o de venta (copia de nombre y precio).
type SaleItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID         string             `json:"id"`
	Date       time.Time          `json:"date"`
	ClientID   string             `json:"clientId"`
	ClientName string             `json:"clientName"`
	Items      []SaleItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
}
