// Package sales orquesta el motor de ventas: sesiones de carrito, confirmación
// atómica contra el inventario, consultas del ledger y reportes.
package sales

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	domainsales "github.com/jhoicas/Tienda-api/internal/domain/sales"
	"github.com/jhoicas/Tienda-api/pkg/idgen"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// SaleCommitter único escritor del inventario (por venta) y del ledger.
// Commit se serializa con un mutex: con varias sesiones HTTP concurrentes sigue
// habiendo un solo escritor a la vez.
type SaleCommitter struct {
	mu       sync.Mutex
	products repository.ProductRepository
	clients  repository.ClientReader
	ledger   repository.SaleRepository
	newID    idgen.Generator
	now      func() time.Time
	observer CommitObserver
	log      *logger.Logger
}

// NewSaleCommitter construye el committer con IDs UUID y reloj real.
func NewSaleCommitter(
	products repository.ProductRepository,
	clients repository.ClientReader,
	ledger repository.SaleRepository,
	log *logger.Logger,
) *SaleCommitter {
	return &SaleCommitter{
		products: products,
		clients:  clients,
		ledger:   ledger,
		newID:    idgen.UUID,
		now:      time.Now,
		observer: nopObserver{},
		log:      log.Component("sale_committer"),
	}
}

// WithIDGenerator reemplaza el generador de IDs de venta.
func (c *SaleCommitter) WithIDGenerator(g idgen.Generator) *SaleCommitter {
	c.newID = idgen.Or(g)
	return c
}

// WithClock reemplaza el reloj (tests).
func (c *SaleCommitter) WithClock(now func() time.Time) *SaleCommitter {
	if now != nil {
		c.now = now
	}
	return c
}

// WithObserver registra el observador de confirmaciones.
func (c *SaleCommitter) WithObserver(o CommitObserver) *SaleCommitter {
	if o != nil {
		c.observer = o
	}
	return c
}

// Commit confirma el carrito como una venta inmutable.
//
// Todo o nada: primero valida todas las líneas contra el stock actual y resuelve el
// cliente; sólo entonces descuenta stock y agrega la venta. Si falla la persistencia
// a mitad de camino, restaura el stock ya descontado. El carrito no se modifica.
func (c *SaleCommitter) Commit(ctx context.Context, cart *domainsales.Cart) (*entity.Sale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sale, err := c.commit(ctx, cart)
	if err != nil {
		c.observer.CommitRejected(rejectReason(err))
		ev := c.log.Warn().Err(err)
		if cart != nil {
			ev = ev.Str("client_id", cart.ClientID).Int("items", len(cart.Items))
		}
		ev.Msg("venta rechazada")
		return nil, err
	}
	c.observer.SaleCommitted(sale)
	c.log.Info().
		Str("sale_id", sale.ID).
		Str("client_id", sale.ClientID).
		Str("total", sale.Total.String()).
		Int("items", len(sale.Items)).
		Msg("venta confirmada")
	return sale, nil
}

func (c *SaleCommitter) commit(ctx context.Context, cart *domainsales.Cart) (*entity.Sale, error) {
	if cart == nil || cart.ClientID == "" {
		return nil, domain.NewValidationError("selecciona un cliente")
	}
	if cart.IsEmpty() {
		return nil, domain.NewValidationError("el carrito está vacío")
	}

	// Validación en seco de todas las líneas antes de tocar el stock
	wanted := make(map[string]int, len(cart.Items))
	order := make([]string, 0, len(cart.Items))
	available := make(map[string]int, len(cart.Items))
	for _, it := range cart.Items {
		if it.Qty <= 0 {
			return nil, domain.NewValidationError("cantidad inválida para %s", it.Name)
		}
		if _, seen := available[it.ProductID]; !seen {
			p, err := c.products.GetByID(it.ProductID)
			if err != nil {
				return nil, fmt.Errorf("commit: leer producto: %w", err)
			}
			if p == nil {
				return nil, &domain.NotFoundError{Kind: "producto", ID: it.ProductID}
			}
			available[it.ProductID] = p.Stock
			order = append(order, it.ProductID)
		}
		wanted[it.ProductID] += it.Qty
		if wanted[it.ProductID] > available[it.ProductID] {
			return nil, &domain.InsufficientStockError{ProductID: it.ProductID, ProductName: it.Name, Available: available[it.ProductID]}
		}
	}

	client, err := c.clients.GetByID(cart.ClientID)
	if err != nil {
		return nil, fmt.Errorf("commit: leer cliente: %w", err)
	}
	if client == nil {
		return nil, &domain.NotFoundError{Kind: "cliente", ID: cart.ClientID}
	}

	// Efectos: AdjustStock revalida contra el stock del momento (una edición por CRUD
	// pudo entrar después de la validación en seco); si algo falla se devuelve lo descontado.
	applied := make(map[string]int, len(order))
	for _, id := range order {
		if _, err := c.products.AdjustStock(ctx, id, -wanted[id]); err != nil {
			c.rollback(ctx, applied)
			return nil, fmt.Errorf("commit: descontar stock: %w", err)
		}
		applied[id] = wanted[id]
	}

	items := entity.CloneItems(cart.Items)
	sale := &entity.Sale{
		ID:         c.newID(),
		Date:       c.now().UTC(),
		ClientID:   client.ID,
		ClientName: client.Name,
		Items:      items,
		Total:      entity.SumSubtotals(items),
	}
	if err := c.ledger.Append(ctx, sale); err != nil {
		c.rollback(ctx, applied)
		return nil, fmt.Errorf("commit: registrar venta: %w", err)
	}
	return sale.Clone(), nil
}

// rollback devuelve al stock las cantidades ya descontadas.
func (c *SaleCommitter) rollback(ctx context.Context, applied map[string]int) {
	for id, qty := range applied {
		if _, err := c.products.AdjustStock(ctx, id, qty); err != nil {
			c.log.Error().Err(err).Str("product_id", id).Int("qty", qty).Msg("no se pudo restaurar el stock")
		}
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "validation"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
