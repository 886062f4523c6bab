package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductReader lectura del inventario. GetByID devuelve (nil, nil) si el producto no existe.
type ProductReader interface {
	GetByID(id string) (*entity.Product, error)
}

// ProductRepository puerto del Inventory Store (DIP).
// El stock cambia sólo por SetStock, AdjustStock o UpdateWithStock (Update lo conserva).
// SetStock falla con NotFoundError o InvalidStockError. AdjustStock suma delta de forma
// atómica y falla con InsufficientStockError si el resultado sería negativo.
type ProductRepository interface {
	ProductReader
	List() ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	SetStock(ctx context.Context, id string, stock int) error
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
	UpdateWithStock(ctx context.Context, product *entity.Product) error
}
