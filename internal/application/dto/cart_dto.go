package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega al carrito. Si productId o qty faltan se usa el par pendiente de la sesión.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Qty       *int   `json:"qty"`
}

// PendingRequest prepara el par (producto, cantidad) del próximo agregado.
type PendingRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// SelectClientRequest cliente de la venta en curso. Vacío deselecciona.
type SelectClientRequest struct {
	ClientID string `json:"clientId"`
}

// CartResponse estado del carrito de la sesión.
type CartResponse struct {
	ClientID   string             `json:"clientId"`
	ClientName string             `json:"clientName,omitempty"`
	Items      []SaleItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	Pending    PendingRequest     `json:"pending"`
}
