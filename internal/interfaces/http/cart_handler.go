package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	appsales "github.com/jhoicas/Tienda-api/internal/application/sales"
)

// CartHandler carrito de la sesión del usuario autenticado.
type CartHandler struct {
	uc *appsales.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *appsales.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reset vacía el carrito.
func (h *CartHandler) Reset(c *fiber.Ctx) error {
	h.uc.Reset(GetUserID(c))
	return h.Get(c)
}

// SelectClient godoc
// @Summary      Seleccionar cliente de la venta
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectClientRequest  true  "clientId"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/client [put]
func (h *CartHandler) SelectClient(c *fiber.Ctx) error {
	var in dto.SelectClientRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.SelectClient(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetPending prepara producto y cantidad del próximo agregado.
func (h *CartHandler) SetPending(c *fiber.Ctx) error {
	var in dto.PendingRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.SetPending(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  Valida contra el stock actual. Si el producto ya está, acumula la cantidad.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "productId, qty"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddItem(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem quita la línea :index (base 0).
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index", -1)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INDEX_OUT_OF_RANGE", Message: "índice inválido"})
	}
	out, err := h.uc.RemoveItem(GetUserID(c), index)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Confirmar venta
// @Description  Revalida todo el carrito contra el stock actual; descuenta stock y registra la venta, o no hace nada.
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
