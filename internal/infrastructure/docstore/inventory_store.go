package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

var _ repository.ProductRepository = (*InventoryStore)(nil)

// InventoryStore dueño del mapeo producto -> registro (incluido el stock).
// Devuelve siempre copias; el stock cambia sólo por SetStock, AdjustStock o UpdateWithStock.
type InventoryStore struct {
	mu       sync.RWMutex
	doc      repository.DocumentStore
	log      *logger.Logger
	products []*entity.Product
}

// NewInventoryStore carga los productos guardados bajo "products".
func NewInventoryStore(ctx context.Context, doc repository.DocumentStore, log *logger.Logger) (*InventoryStore, error) {
	var products []*entity.Product
	if err := load(ctx, doc, repository.KeyProducts, &products); err != nil {
		return nil, err
	}
	products = compact(products)
	log.Info().Int("count", len(products)).Msg("inventario cargado")
	return &InventoryStore{doc: doc, log: log, products: products}, nil
}

// GetByID devuelve (nil, nil) si el producto no existe.
func (s *InventoryStore) GetByID(id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.products[i].Clone(), nil
	}
	return nil, nil
}

// List devuelve los productos en orden de creación.
func (s *InventoryStore) List() ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Create agrega un producto. Falla con ErrDuplicate si el ID ya existe.
func (s *InventoryStore) Create(ctx context.Context, product *entity.Product) error {
	if product.Stock < 0 {
		return &domain.InvalidStockError{ProductID: product.ID, Stock: product.Stock}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(product.ID) >= 0 {
		return domain.ErrDuplicate
	}
	s.products = append(s.products, product.Clone())
	if err := s.persist(ctx); err != nil {
		s.products = s.products[:len(s.products)-1]
		return err
	}
	return nil
}

// Update reemplaza los datos descriptivos y precios. El stock guardado se conserva:
// sólo SetStock lo cambia.
func (s *InventoryStore) Update(ctx context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(product.ID)
	if i < 0 {
		return &domain.NotFoundError{Kind: "producto", ID: product.ID}
	}
	prev := s.products[i]
	next := product.Clone()
	next.Stock = prev.Stock
	s.products[i] = next
	if err := s.persist(ctx); err != nil {
		s.products[i] = prev
		return err
	}
	return nil
}

// Delete elimina el producto. Las ventas que lo referencian conservan su copia.
func (s *InventoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return &domain.NotFoundError{Kind: "producto", ID: id}
	}
	prev := s.products
	next := make([]*entity.Product, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	s.products = next
	if err := s.persist(ctx); err != nil {
		s.products = prev
		return err
	}
	return nil
}

// SetStock único punto de cambio de stock: NotFoundError si el id no existe,
// InvalidStockError si stock < 0.
func (s *InventoryStore) SetStock(ctx context.Context, id string, stock int) error {
	if stock < 0 {
		return &domain.InvalidStockError{ProductID: id, Stock: stock}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return &domain.NotFoundError{Kind: "producto", ID: id}
	}
	p := s.products[i]
	prevStock, prevUpdated := p.Stock, p.UpdatedAt
	p.Stock = stock
	p.UpdatedAt = time.Now().UTC()
	if err := s.persist(ctx); err != nil {
		p.Stock, p.UpdatedAt = prevStock, prevUpdated
		return err
	}
	return nil
}

// AdjustStock suma delta al stock actual bajo el mismo lock que SetStock y devuelve el
// stock resultante. Si el resultado quedaría negativo no cambia nada y devuelve
// InsufficientStockError con el stock disponible.
func (s *InventoryStore) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return 0, &domain.NotFoundError{Kind: "producto", ID: id}
	}
	p := s.products[i]
	if p.Stock+delta < 0 {
		return p.Stock, &domain.InsufficientStockError{ProductID: id, ProductName: p.Name, Available: p.Stock}
	}
	prevStock, prevUpdated := p.Stock, p.UpdatedAt
	p.Stock += delta
	p.UpdatedAt = time.Now().UTC()
	if err := s.persist(ctx); err != nil {
		p.Stock, p.UpdatedAt = prevStock, prevUpdated
		return prevStock, err
	}
	return p.Stock, nil
}

// UpdateWithStock reemplaza el producto completo, stock incluido, en una sola escritura.
func (s *InventoryStore) UpdateWithStock(ctx context.Context, product *entity.Product) error {
	if product.Stock < 0 {
		return &domain.InvalidStockError{ProductID: product.ID, Stock: product.Stock}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(product.ID)
	if i < 0 {
		return &domain.NotFoundError{Kind: "producto", ID: product.ID}
	}
	prev := s.products[i]
	s.products[i] = product.Clone()
	if err := s.persist(ctx); err != nil {
		s.products[i] = prev
		return err
	}
	return nil
}

func (s *InventoryStore) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *InventoryStore) persist(ctx context.Context) error {
	if err := save(ctx, s.doc, repository.KeyProducts, s.products); err != nil {
		s.log.Error().Err(err).Msg("no se pudo guardar el inventario")
		return err
	}
	return nil
}
