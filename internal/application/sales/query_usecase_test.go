package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

type fakeRenderer struct {
	sale   *entity.Sale
	header ReceiptHeader
}

func (r *fakeRenderer) RenderReceipt(_ context.Context, sale *entity.Sale, header ReceiptHeader) ([]byte, error) {
	r.sale, r.header = sale, header
	return []byte("%PDF-fake"), nil
}

func checkout(t *testing.T, uc *CartUseCase, productID string, qty int) *dto.SaleResponse {
	t.Helper()
	_, err := uc.SelectClient("u1", dto.SelectClientRequest{ClientID: "X"})
	require.NoError(t, err)
	_, err = uc.AddItem("u1", dto.AddCartItemRequest{ProductID: productID, Qty: &qty})
	require.NoError(t, err)
	sale, err := uc.Checkout(context.Background(), "u1")
	require.NoError(t, err)
	return sale
}

func TestQueryUseCase_ListGetReport(t *testing.T) {
	f := newFixture(t)
	carts := NewCartUseCase(f.products, f.clients, f.committer)
	q := NewQueryUseCase(f.ledger, f.clients, f.users, nil)

	rep, err := q.Report()
	require.NoError(t, err)
	assert.Equal(t, 0, rep.TotalSales)
	assert.True(t, rep.TotalRevenue.IsZero())
	assert.Nil(t, rep.TopClient)
	assert.Nil(t, rep.TopProduct)

	s1 := checkout(t, carts, "A", 2)
	checkout(t, carts, "B", 1)

	list, err := q.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, s1.ID, list[0].ID)

	got, err := q.Get(s1.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(20)))

	_, err = q.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rep, err = q.Report()
	require.NoError(t, err)
	assert.Equal(t, 2, rep.TotalSales)
	assert.True(t, rep.TotalRevenue.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 3, rep.TotalItems)
	require.NotNil(t, rep.TopProduct)
	assert.Equal(t, "A", rep.TopProduct.ProductID)
}

func TestQueryUseCase_Receipt(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.users.Create(context.Background(), &entity.User{ID: "u1", Username: "ana", StoreName: "La Esquina"}))
	carts := NewCartUseCase(f.products, f.clients, f.committer)
	r := &fakeRenderer{}
	q := NewQueryUseCase(f.ledger, f.clients, f.users, r)

	sale := checkout(t, carts, "A", 1)
	out, err := q.Receipt(context.Background(), "u1", sale.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "La Esquina", r.header.StoreName)
	require.NotNil(t, r.header.Client)
	assert.Equal(t, "X", r.header.Client.ID)
	assert.Equal(t, sale.ID, r.sale.ID)

	_, err = q.Receipt(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
