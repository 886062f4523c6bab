package docstore

import (
	"context"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

var _ repository.SaleRepository = (*SalesLedger)(nil)

// SalesLedger secuencia append-only de ventas en orden de confirmación.
type SalesLedger struct {
	mu    sync.RWMutex
	doc   repository.DocumentStore
	log   *logger.Logger
	sales []*entity.Sale
}

// NewSalesLedger carga las ventas guardadas bajo "sales". Las cantidades corruptas se leen como 0.
func NewSalesLedger(ctx context.Context, doc repository.DocumentStore, log *logger.Logger) (*SalesLedger, error) {
	var sales []*entity.Sale
	if err := load(ctx, doc, repository.KeySales, &sales); err != nil {
		return nil, err
	}
	log.Info().Int("count", len(sales)).Msg("ventas cargadas")
	return &SalesLedger{doc: doc, log: log, sales: sales}, nil
}

// Append agrega la venta al final y guarda el ledger. Si el guardado falla la venta no queda registrada.
func (l *SalesLedger) Append(ctx context.Context, sale *entity.Sale) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sales = append(l.sales, sale.Clone())
	if err := save(ctx, l.doc, repository.KeySales, l.sales); err != nil {
		l.sales = l.sales[:len(l.sales)-1]
		l.log.Error().Err(err).Str("sale_id", sale.ID).Msg("no se pudo guardar el ledger")
		return err
	}
	return nil
}

// All copias profundas de todas las ventas.
func (l *SalesLedger) All() ([]*entity.Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(l.sales))
	for _, s := range l.sales {
		out = append(out, s.Clone())
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si la venta no existe.
func (l *SalesLedger) GetByID(id string) (*entity.Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, s := range l.sales {
		if s != nil && s.ID == id {
			return s.Clone(), nil
		}
	}
	return nil, nil
}
