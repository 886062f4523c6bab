package sales

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

type productsMap map[string]*entity.Product

func (m productsMap) GetByID(id string) (*entity.Product, error) {
	p, ok := m[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

type failingReader struct{}

func (failingReader) GetByID(string) (*entity.Product, error) { return nil, errors.New("disco lleno") }

func inventario() productsMap {
	return productsMap{
		"A": {ID: "A", Name: "Producto A", Stock: 5, SalePrice: decimal.NewFromInt(10)},
		"B": {ID: "B", Name: "Producto B", Stock: 2, SalePrice: decimal.NewFromInt(20)},
	}
}

func TestAddItem_NuevaLinea(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(inventario(), "A", 3))

	require.Len(t, cart.Items, 1)
	line := cart.Items[0]
	assert.Equal(t, "A", line.ProductID)
	assert.Equal(t, "Producto A", line.Name)
	assert.Equal(t, 3, line.Qty)
	assert.True(t, line.Subtotal.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, PendingAdd{ProductID: "A", Qty: 1}, cart.Pending)
}

// Acumulación: q1 + q2 del mismo producto produce una sola línea.
func TestAddItem_Acumula(t *testing.T) {
	cart := NewCart()
	inv := inventario()
	require.NoError(t, cart.AddItem(inv, "A", 2))
	require.NoError(t, cart.AddItem(inv, "A", 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.True(t, cart.Items[0].Subtotal.Equal(decimal.NewFromInt(50)))
}

func TestAddItem_AcumulaSuperaStock(t *testing.T) {
	cart := NewCart()
	inv := inventario()
	require.NoError(t, cart.AddItem(inv, "A", 4))

	err := cart.AddItem(inv, "A", 2)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Available)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Qty)
	assert.True(t, cart.Items[0].Subtotal.Equal(decimal.NewFromInt(40)))
}

func TestAddItem_PrecioFijadoEnPrimerAgregado(t *testing.T) {
	cart := NewCart()
	inv := inventario()
	require.NoError(t, cart.AddItem(inv, "A", 1))

	inv["A"].SalePrice = decimal.NewFromInt(99)
	inv["A"].Name = "Renombrado"
	require.NoError(t, cart.AddItem(inv, "A", 1))

	assert.Equal(t, "Producto A", cart.Items[0].Name)
	assert.True(t, cart.Items[0].Price.Equal(decimal.NewFromInt(10)))
	assert.True(t, cart.Items[0].Subtotal.Equal(decimal.NewFromInt(20)))
}

func TestAddItem_Errores(t *testing.T) {
	inv := inventario()

	cart := NewCart()
	assert.ErrorIs(t, cart.AddItem(inv, "", 1), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.AddItem(inv, "A", 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.AddItem(inv, "A", -2), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.AddItem(inv, "Z", 1), domain.ErrNotFound)

	err := cart.AddItem(inv, "B", 3)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)

	assert.Error(t, cart.AddItem(failingReader{}, "A", 1))
	assert.True(t, cart.IsEmpty())
}

func TestRemoveItem(t *testing.T) {
	inv := inventario()
	cart := NewCart()
	require.NoError(t, cart.AddItem(inv, "A", 1))
	require.NoError(t, cart.AddItem(inv, "B", 1))

	var idxErr *domain.IndexError
	require.ErrorAs(t, cart.RemoveItem(2), &idxErr)
	assert.Equal(t, 2, idxErr.Len)
	assert.ErrorIs(t, cart.RemoveItem(-1), domain.ErrIndexOutOfRange)

	require.NoError(t, cart.RemoveItem(0))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "B", cart.Items[0].ProductID)
	assert.Equal(t, 2, inv["B"].Stock, "quitar una línea no toca el stock")
}

func TestTotalYReset(t *testing.T) {
	inv := inventario()
	cart := NewCart()
	assert.True(t, cart.Total().IsZero())

	require.NoError(t, cart.AddItem(inv, "A", 2))
	require.NoError(t, cart.AddItem(inv, "B", 1))
	cart.ClientID = "c1"
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(40)))

	cart.Reset()
	cart.Reset()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.ClientID)
	assert.Equal(t, PendingAdd{Qty: 1}, cart.Pending)
}

func TestClone_NoComparteLineas(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(inventario(), "A", 1))

	cp := cart.Clone()
	cp.Items[0].Qty = 42
	assert.Equal(t, 1, cart.Items[0].Qty)
}
