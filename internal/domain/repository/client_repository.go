package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ClientReader lectura de clientes. GetByID devuelve (nil, nil) si el cliente no existe.
type ClientReader interface {
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
}

// ClientRepository puerto del Client Store.
type ClientRepository interface {
	ClientReader
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
