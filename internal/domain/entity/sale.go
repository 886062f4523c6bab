package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/pkg/numeric"
)

// SaleItem línea de carrito o de venta. Name y Price son una copia del producto
// tomada al agregarlo al carrito; ediciones posteriores del producto no la alteran.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`    // precio unitario de venta
	Subtotal  decimal.Decimal `json:"subtotal"` // Qty * Price
}

// UnmarshalJSON acepta qty como número o texto numérico; cualquier otro valor se lee como 0
// (política de numeric.CoerceInt), así un registro histórico corrupto no invalida el ledger.
func (it *SaleItem) UnmarshalJSON(data []byte) error {
	type alias SaleItem
	aux := struct {
		*alias
		Qty interface{} `json:"qty"`
	}{alias: (*alias)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	it.Qty, _ = numeric.CoerceInt(aux.Qty)
	return nil
}

// Sale venta confirmada. Inmutable después de creada; el ledger es append-only.
type Sale struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"date"` // ISO-8601
	ClientID   string          `json:"clientId"`
	ClientName string          `json:"clientName"` // copia del nombre al confirmar
	Items      []SaleItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
}

// Clone copia profunda de la venta: las líneas no comparten memoria con el original.
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	c := *s
	c.Items = CloneItems(s.Items)
	return &c
}

// CloneItems copia las líneas en un slice nuevo.
func CloneItems(items []SaleItem) []SaleItem {
	if items == nil {
		return nil
	}
	out := make([]SaleItem, len(items))
	copy(out, items)
	return out
}

// SumSubtotals suma los subtotales de las líneas.
func SumSubtotals(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}
