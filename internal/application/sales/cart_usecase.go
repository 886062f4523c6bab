package sales

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	domainsales "github.com/jhoicas/Tienda-api/internal/domain/sales"
)

// CartUseCase mantiene un carrito por sesión (el ID del usuario autenticado).
// Los carritos viven sólo en memoria; reiniciar el servidor los descarta.
type CartUseCase struct {
	mu        sync.Mutex
	sessions  map[string]*domainsales.Cart
	products  repository.ProductReader
	clients   repository.ClientReader
	committer *SaleCommitter
}

// NewCartUseCase construye el caso de uso de carrito.
func NewCartUseCase(products repository.ProductReader, clients repository.ClientReader, committer *SaleCommitter) *CartUseCase {
	return &CartUseCase{
		sessions:  make(map[string]*domainsales.Cart),
		products:  products,
		clients:   clients,
		committer: committer,
	}
}

// cart devuelve el carrito de la sesión, creándolo si no existe. Llamar con mu tomado.
func (uc *CartUseCase) cart(sessionID string) *domainsales.Cart {
	c, ok := uc.sessions[sessionID]
	if !ok {
		c = domainsales.NewCart()
		uc.sessions[sessionID] = c
	}
	return c
}

// Get estado actual del carrito.
func (uc *CartUseCase) Get(sessionID string) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.toResponse(uc.cart(sessionID))
}

// SetPending prepara el par (producto, cantidad) sin validar: sólo AddItem valida.
func (uc *CartUseCase) SetPending(sessionID string, in dto.PendingRequest) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(sessionID)
	c.Pending = domainsales.PendingAdd{ProductID: in.ProductID, Qty: in.Qty}
	return uc.toResponse(c)
}

// AddItem agrega al carrito. Los campos ausentes se toman del par pendiente.
func (uc *CartUseCase) AddItem(sessionID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(sessionID)
	productID := in.ProductID
	if productID == "" {
		productID = c.Pending.ProductID
	}
	qty := c.Pending.Qty
	if in.Qty != nil {
		qty = *in.Qty
	}
	if err := c.AddItem(uc.products, productID, qty); err != nil {
		return nil, err
	}
	return uc.toResponse(c)
}

// RemoveItem quita la línea index.
func (uc *CartUseCase) RemoveItem(sessionID string, index int) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(sessionID)
	if err := c.RemoveItem(index); err != nil {
		return nil, err
	}
	return uc.toResponse(c)
}

// SelectClient fija el cliente de la venta. Un ID vacío lo deselecciona.
func (uc *CartUseCase) SelectClient(sessionID string, in dto.SelectClientRequest) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(sessionID)
	if in.ClientID != "" {
		client, err := uc.clients.GetByID(in.ClientID)
		if err != nil {
			return nil, fmt.Errorf("carrito: leer cliente: %w", err)
		}
		if client == nil {
			return nil, &domain.NotFoundError{Kind: "cliente", ID: in.ClientID}
		}
	}
	c.ClientID = in.ClientID
	return uc.toResponse(c)
}

// Reset vacía el carrito de la sesión.
func (uc *CartUseCase) Reset(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cart(sessionID).Reset()
}

// Checkout confirma el carrito y, si la venta se registra, lo vacía.
// Ante un error el carrito queda como estaba para corregirlo y reintentar.
func (uc *CartUseCase) Checkout(ctx context.Context, sessionID string) (*dto.SaleResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(sessionID)
	sale, err := uc.committer.Commit(ctx, c)
	if err != nil {
		return nil, err
	}
	c.Reset()
	return ToSaleResponse(sale), nil
}

func (uc *CartUseCase) toResponse(c *domainsales.Cart) (*dto.CartResponse, error) {
	out := &dto.CartResponse{
		ClientID: c.ClientID,
		Items:    toItemResponses(c.Items),
		Total:    c.Total(),
		Pending:  dto.PendingRequest{ProductID: c.Pending.ProductID, Qty: c.Pending.Qty},
	}
	if c.ClientID != "" {
		client, err := uc.clients.GetByID(c.ClientID)
		if err != nil {
			return nil, fmt.Errorf("carrito: leer cliente: %w", err)
		}
		if client != nil {
			out.ClientName = client.Name
		}
	}
	return out, nil
}
