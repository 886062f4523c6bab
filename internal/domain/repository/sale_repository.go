package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// SaleRepository puerto del Sales Ledger: append-only, sin Update ni Delete.
type SaleRepository interface {
	// Append agrega una venta al final del ledger. No valida: el único llamador legítimo es el SaleCommitter.
	Append(ctx context.Context, sale *entity.Sale) error
	// All devuelve copias de todas las ventas en orden de confirmación.
	All() ([]*entity.Sale, error)
	GetByID(id string) (*entity.Sale, error)
}
