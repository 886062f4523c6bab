package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	domainsales "github.com/jhoicas/Tienda-api/internal/domain/sales"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func TestCommit_EscenarioCompleto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := domainsales.NewCart()
	require.NoError(t, cart.AddItem(f.products, "A", 3))
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].Subtotal.Equal(decimal.NewFromInt(30)))

	err := cart.AddItem(f.products, "B", 3)
	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	assert.Equal(t, 2, insuf.Available)
	require.Len(t, cart.Items, 1)

	cart.ClientID = "X"
	sale, err := f.committer.Commit(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, "venta-1", sale.ID)
	assert.Equal(t, fixedNow, sale.Date)
	assert.Equal(t, "Cliente X", sale.ClientName)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 2, f.stock(t, "A"))
	assert.Equal(t, 2, f.stock(t, "B"))

	clients, _ := f.clients.List()
	rep := domainsales.Compute(f.sales(t), clients)
	assert.Equal(t, 1, rep.TotalSales)
	assert.True(t, rep.TotalRevenue.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 3, rep.TotalItems)
	require.NotNil(t, rep.TopClient)
	assert.Equal(t, "Cliente X", rep.TopClient.Name)
	assert.True(t, rep.TopClient.Amount.Equal(decimal.NewFromInt(30)))
	require.NotNil(t, rep.TopProduct)
	assert.Equal(t, "A", rep.TopProduct.ProductID)
	assert.Equal(t, 3, rep.TopProduct.Qty)
}

func TestCommit_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.committer.Commit(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cart := domainsales.NewCart()
	require.NoError(t, cart.AddItem(f.products, "A", 1))
	_, err = f.committer.Commit(ctx, cart)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin cliente")

	empty := domainsales.NewCart()
	empty.ClientID = "X"
	_, err = f.committer.Commit(ctx, empty)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "carrito vacío")

	assert.Empty(t, f.sales(t))
	assert.Equal(t, 5, f.stock(t, "A"))
}

func TestCommit_RevalidaContraStockActual(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 2))
	require.NoError(t, cart.AddItem(f.products, "B", 2))

	// el stock de B baja entre el armado y la confirmación
	require.NoError(t, f.products.SetStock(ctx, "B", 1))

	_, err := f.committer.Commit(ctx, cart)
	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	assert.Equal(t, "Producto B", insuf.ProductName)
	assert.Contains(t, err.Error(), "Producto B")

	// P2: nada cambió
	assert.Equal(t, 5, f.stock(t, "A"))
	assert.Equal(t, 1, f.stock(t, "B"))
	assert.Empty(t, f.sales(t))
	assert.Len(t, cart.Items, 2, "el carrito queda intacto")
}

func TestCommit_ClienteBorradoNoTocaStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 2))
	require.NoError(t, f.clients.Delete(ctx, "X"))

	_, err := f.committer.Commit(ctx, cart)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 5, f.stock(t, "A"))
	assert.Empty(t, f.sales(t))
}

func TestCommit_ProductoBorradoFalla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 1))
	require.NoError(t, cart.AddItem(f.products, "B", 1))
	require.NoError(t, f.products.Delete(ctx, "B"))

	_, err := f.committer.Commit(ctx, cart)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 5, f.stock(t, "A"))
}

func TestCommit_FalloDelLedgerRestauraStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 3))
	require.NoError(t, cart.AddItem(f.products, "B", 2))

	f.doc.failKey = repository.KeySales
	_, err := f.committer.Commit(ctx, cart)
	require.Error(t, err)

	assert.Equal(t, 5, f.stock(t, "A"))
	assert.Equal(t, 2, f.stock(t, "B"))
	assert.Empty(t, f.sales(t))
}

func TestCommit_FalloAlGuardarStockNoDejaDescuentoParcial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 1))

	f.doc.failKey = repository.KeyProducts
	_, err := f.committer.Commit(ctx, cart)
	require.Error(t, err)
	f.doc.failKey = ""

	assert.Equal(t, 5, f.stock(t, "A"))
	assert.Empty(t, f.sales(t))
}

func TestCommit_NuncaStockNegativo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// varias ventas seguidas hasta agotar A; la que excede debe fallar
	for i := 0; i < 3; i++ {
		cart := domainsales.NewCart()
		cart.ClientID = "X"
		err := cart.AddItem(f.products, "A", 2)
		if i < 2 {
			require.NoError(t, err)
			_, err = f.committer.Commit(ctx, cart)
			require.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
		assert.GreaterOrEqual(t, f.stock(t, "A"), 0)
	}
	assert.Equal(t, 1, f.stock(t, "A"))

	// carrito armado con datos viejos: la revalidación lo frena
	stale := &domainsales.Cart{ClientID: "X", Items: []entity.SaleItem{{ProductID: "A", Name: "Producto A", Qty: 4, Price: decimal.NewFromInt(10), Subtotal: decimal.NewFromInt(40)}}}
	_, err := f.committer.Commit(ctx, stale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, f.stock(t, "A"))
}

func TestCommit_SnapshotIndependiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 1))
	sale, err := f.committer.Commit(ctx, cart)
	require.NoError(t, err)

	require.NoError(t, f.products.Update(ctx, &entity.Product{ID: "A", Name: "Renombrado", Stock: 4, SalePrice: decimal.NewFromInt(99)}))
	require.NoError(t, f.clients.Update(ctx, &entity.Client{ID: "X", Name: "Otro nombre"}))
	sale.Items[0].Name = "mutado por el llamador"

	stored, err := f.ledger.GetByID("venta-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Producto A", stored.Items[0].Name)
	assert.True(t, stored.Items[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Cliente X", stored.ClientName)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(10)))
}

type recordingObserver struct {
	committed int
	rejected  []string
}

func (r *recordingObserver) SaleCommitted(*entity.Sale)   { r.committed++ }
func (r *recordingObserver) CommitRejected(reason string) { r.rejected = append(r.rejected, reason) }

func TestCommit_NotificaObservador(t *testing.T) {
	f := newFixture(t)
	obs := &recordingObserver{}
	f.committer.WithObserver(obs)
	ctx := context.Background()

	cart := domainsales.NewCart()
	_, err := f.committer.Commit(ctx, cart)
	require.Error(t, err)

	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "B", 2))
	_, err = f.committer.Commit(ctx, cart)
	require.NoError(t, err)

	assert.Equal(t, 1, obs.committed)
	assert.Equal(t, []string{"validation"}, obs.rejected)
}

// stockEditDuringCommit simula una edición de stock por CRUD que entra entre la
// validación en seco y el descuento del producto target.
type stockEditDuringCommit struct {
	*docstore.InventoryStore
	target string
	stock  int
	done   bool
}

func (s *stockEditDuringCommit) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	if id == s.target && delta < 0 && !s.done {
		s.done = true
		if err := s.InventoryStore.SetStock(ctx, id, s.stock); err != nil {
			return 0, err
		}
	}
	return s.InventoryStore.AdjustStock(ctx, id, delta)
}

func TestCommit_EdicionDeStockConcurrenteNoSeSobrescribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	products := &stockEditDuringCommit{InventoryStore: f.products, target: "A", stock: 1}
	committer := NewSaleCommitter(products, f.clients, f.ledger, logger.Nop())

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 3))

	sale, err := committer.Commit(ctx, cart)
	assert.Nil(t, sale)
	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	assert.Equal(t, 1, insuf.Available)
	assert.Equal(t, "Producto A", insuf.ProductName)

	assert.Equal(t, 1, f.stock(t, "A"))
	assert.Empty(t, f.sales(t))
}

func TestCommit_EdicionConcurrenteDevuelveLoYaDescontado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	products := &stockEditDuringCommit{InventoryStore: f.products, target: "B", stock: 0}
	committer := NewSaleCommitter(products, f.clients, f.ledger, logger.Nop())

	cart := domainsales.NewCart()
	cart.ClientID = "X"
	require.NoError(t, cart.AddItem(f.products, "A", 2))
	require.NoError(t, cart.AddItem(f.products, "B", 1))

	_, err := committer.Commit(ctx, cart)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 5, f.stock(t, "A"))
	assert.Equal(t, 0, f.stock(t, "B"))
	assert.Empty(t, f.sales(t))
}
