package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// keyFailDoc falla al guardar una clave concreta.
type keyFailDoc struct {
	*memory.DocumentStore
	failKey string
}

func (d *keyFailDoc) Set(ctx context.Context, key string, value interface{}) error {
	if key == d.failKey {
		return errors.New("almacenamiento no disponible")
	}
	return d.DocumentStore.Set(ctx, key, value)
}

type fixture struct {
	doc       *keyFailDoc
	products  *docstore.InventoryStore
	clients   *docstore.ClientStore
	ledger    *docstore.SalesLedger
	users     *docstore.UserStore
	committer *SaleCommitter
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

// newFixture: A (stock 5, precio 10), B (stock 2, precio 20), cliente X.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	doc := &keyFailDoc{DocumentStore: memory.NewDocumentStore()}
	log := logger.Nop()

	products, err := docstore.NewInventoryStore(ctx, doc, log)
	require.NoError(t, err)
	clients, err := docstore.NewClientStore(ctx, doc, log)
	require.NoError(t, err)
	ledger, err := docstore.NewSalesLedger(ctx, doc, log)
	require.NoError(t, err)
	users, err := docstore.NewUserStore(ctx, doc, log)
	require.NoError(t, err)

	require.NoError(t, products.Create(ctx, &entity.Product{ID: "A", Name: "Producto A", Stock: 5, SalePrice: decimal.NewFromInt(10)}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "B", Name: "Producto B", Stock: 2, SalePrice: decimal.NewFromInt(20)}))
	require.NoError(t, clients.Create(ctx, &entity.Client{ID: "X", Name: "Cliente X"}))

	seq := 0
	committer := NewSaleCommitter(products, clients, ledger, log).
		WithIDGenerator(func() string {
			seq++
			return "venta-" + string(rune('0'+seq))
		}).
		WithClock(func() time.Time { return fixedNow })

	return &fixture{doc: doc, products: products, clients: clients, ledger: ledger, users: users, committer: committer}
}

func (f *fixture) stock(t *testing.T, id string) int {
	t.Helper()
	p, err := f.products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func (f *fixture) sales(t *testing.T) []*entity.Sale {
	t.Helper()
	all, err := f.ledger.All()
	require.NoError(t, err)
	return all
}
