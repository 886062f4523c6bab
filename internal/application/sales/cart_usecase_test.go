package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestCartUseCase_SesionesIndependientes(t *testing.T) {
	f := newFixture(t)
	uc := NewCartUseCase(f.products, f.clients, f.committer)

	_, err := uc.AddItem("u1", dto.AddCartItemRequest{ProductID: "A", Qty: intPtr(2)})
	require.NoError(t, err)

	other, err := uc.Get("u2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
	assert.Equal(t, 1, other.Pending.Qty)

	mine, err := uc.Get("u1")
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.True(t, mine.Total.Equal(decimal.NewFromInt(20)))
}

func TestCartUseCase_ParPendiente(t *testing.T) {
	f := newFixture(t)
	uc := NewCartUseCase(f.products, f.clients, f.committer)

	_, err := uc.SetPending("u1", dto.PendingRequest{ProductID: "A", Qty: 3})
	require.NoError(t, err)

	res, err := uc.AddItem("u1", dto.AddCartItemRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 3, res.Items[0].Qty)
	// tras agregar: cantidad vuelve a 1, el producto queda seleccionado
	assert.Equal(t, dto.PendingRequest{ProductID: "A", Qty: 1}, res.Pending)

	res, err = uc.AddItem("u1", dto.AddCartItemRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Items[0].Qty)

	_, err = uc.AddItem("u1", dto.AddCartItemRequest{Qty: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCartUseCase_SelectClientYRemove(t *testing.T) {
	f := newFixture(t)
	uc := NewCartUseCase(f.products, f.clients, f.committer)

	_, err := uc.SelectClient("u1", dto.SelectClientRequest{ClientID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := uc.SelectClient("u1", dto.SelectClientRequest{ClientID: "X"})
	require.NoError(t, err)
	assert.Equal(t, "Cliente X", res.ClientName)

	_, err = uc.AddItem("u1", dto.AddCartItemRequest{ProductID: "A", Qty: intPtr(1)})
	require.NoError(t, err)
	_, err = uc.RemoveItem("u1", 3)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	res, err = uc.RemoveItem("u1", 0)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 5, f.stock(t, "A"), "quitar líneas no toca el stock")
}

func TestCartUseCase_CheckoutVaciaSoloSiConfirma(t *testing.T) {
	f := newFixture(t)
	uc := NewCartUseCase(f.products, f.clients, f.committer)
	ctx := context.Background()

	_, err := uc.AddItem("u1", dto.AddCartItemRequest{ProductID: "A", Qty: intPtr(3)})
	require.NoError(t, err)

	_, err = uc.Checkout(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	res, _ := uc.Get("u1")
	assert.Len(t, res.Items, 1, "un checkout fallido conserva el carrito")

	_, err = uc.SelectClient("u1", dto.SelectClientRequest{ClientID: "X"})
	require.NoError(t, err)
	sale, err := uc.Checkout(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Cliente X", sale.ClientName)

	res, _ = uc.Get("u1")
	assert.Empty(t, res.Items)
	assert.Empty(t, res.ClientID)
	assert.Equal(t, 2, f.stock(t, "A"))
}

func TestCartUseCase_Reset(t *testing.T) {
	f := newFixture(t)
	uc := NewCartUseCase(f.products, f.clients, f.committer)

	_, err := uc.AddItem("u1", dto.AddCartItemRequest{ProductID: "B", Qty: intPtr(1)})
	require.NoError(t, err)
	uc.Reset("u1")
	uc.Reset("u1")
	res, err := uc.Get("u1")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, dto.PendingRequest{Qty: 1}, res.Pending)
}
