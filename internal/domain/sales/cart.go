// Package sales contiene la lógica pura del motor de ventas: armado del carrito
// contra el inventario vivo y agregación de reportes sobre el ledger.
package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// PendingAdd par (producto, cantidad) que el operador prepara entre agregados. No lleva invariantes.
type PendingAdd struct {
	ProductID string
	Qty       int
}

// Cart carrito efímero de una sesión de venta. Una línea por producto distinto,
// en orden de inserción. No se persiste; se descarta al confirmar o al resetear.
type Cart struct {
	ClientID string
	Items    []entity.SaleItem
	Pending  PendingAdd
}

// NewCart crea un carrito vacío con la cantidad pendiente en 1.
func NewCart() *Cart {
	return &Cart{Pending: PendingAdd{Qty: 1}}
}

// AddItem agrega qty unidades de productID validando contra el stock actual.
// Si el producto ya está en el carrito acumula la cantidad y conserva el precio
// copiado en el primer agregado. Ante cualquier error el carrito no cambia.
func (c *Cart) AddItem(products repository.ProductReader, productID string, qty int) error {
	if productID == "" || qty <= 0 {
		return domain.NewValidationError("selecciona producto y cantidad válida")
	}
	p, err := products.GetByID(productID)
	if err != nil {
		return fmt.Errorf("carrito: leer producto: %w", err)
	}
	if p == nil {
		return &domain.NotFoundError{Kind: "producto", ID: productID}
	}
	available := p.Stock

	if i := c.indexOf(productID); i >= 0 {
		line := &c.Items[i]
		newQty := line.Qty + qty
		if newQty > available {
			return &domain.InsufficientStockError{ProductID: productID, Available: available}
		}
		line.Qty = newQty
		line.Subtotal = line.Price.Mul(decimal.NewFromInt(int64(newQty)))
	} else {
		if qty > available {
			return &domain.InsufficientStockError{ProductID: productID, Available: available}
		}
		c.Items = append(c.Items, entity.SaleItem{
			ProductID: p.ID,
			Name:      p.Name,
			Qty:       qty,
			Price:     p.SalePrice,
			Subtotal:  p.SalePrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	// Reset rápido de la cantidad pendiente, conservando el producto seleccionado
	c.Pending = PendingAdd{ProductID: productID, Qty: 1}
	return nil
}

// RemoveItem quita la línea index. No toca el stock: nada se descuenta hasta confirmar.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.Items) {
		return &domain.IndexError{Index: index, Len: len(c.Items)}
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// Total suma de subtotales.
func (c *Cart) Total() decimal.Decimal {
	return entity.SumSubtotals(c.Items)
}

// Reset vacía líneas, cliente seleccionado y el par pendiente. Idempotente.
func (c *Cart) Reset() {
	c.ClientID = ""
	c.Items = nil
	c.Pending = PendingAdd{Qty: 1}
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone copia el carrito (para exponerlo sin compartir las líneas).
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.Items = entity.CloneItems(c.Items)
	return &cp
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
