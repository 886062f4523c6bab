package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/idgen"
)

// ProductUseCase casos de uso CRUD para productos. Un stock editado se guarda con UpdateWithStock.
type ProductUseCase struct {
	repo  repository.ProductRepository
	newID idgen.Generator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, newID idgen.Generator) *ProductUseCase {
	return &ProductUseCase{repo: repo, newID: idgen.Or(newID)}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("el nombre es obligatorio")
	}
	if err := checkPrices(in.CostPrice, in.SalePrice); err != nil {
		return nil, err
	}
	if in.Stock < 0 {
		return nil, &domain.InvalidStockError{Stock: in.Stock}
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uc.newID(),
		Name:        in.Name,
		Description: in.Description,
		Stock:       in.Stock,
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Kind: "producto", ID: id}
	}
	return toProductResponse(product), nil
}

// Update actualización parcial. Si trae stock, todos los campos se guardan en una sola
// escritura con UpdateWithStock; si no, Update conserva el stock actual.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Kind: "producto", ID: id}
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("el nombre es obligatorio")
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if err := checkPrices(product.CostPrice, product.SalePrice); err != nil {
		return nil, err
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, &domain.InvalidStockError{ProductID: id, Stock: *in.Stock}
	}
	product.UpdatedAt = time.Now().UTC()
	if in.Stock != nil {
		product.Stock = *in.Stock
		err = uc.repo.UpdateWithStock(ctx, product)
	} else {
		err = uc.repo.Update(ctx, product)
	}
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// List lista todos los productos en orden de creación.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID. Las ventas pasadas conservan su copia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func checkPrices(cost, sale decimal.Decimal) error {
	if cost.IsNegative() || sale.IsNegative() {
		return domain.NewValidationError("los precios no pueden ser negativos")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Stock,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
