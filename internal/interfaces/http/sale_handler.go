package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	appsales "github.com/jhoicas/Tienda-api/internal/application/sales"
)

// SaleHandler historial de ventas, comprobantes y reportes.
type SaleHandler struct {
	uc *appsales.QueryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *appsales.QueryUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas en orden de confirmación
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(items))
}

func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="venta-`+id+`.pdf"`)
	return c.Send(pdf)
}

// Summary godoc
// @Summary      Resumen de ventas
// @Description  Total de ventas, ingresos, unidades, mejor cliente y producto más vendido.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports/summary [get]
func (h *SaleHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Report()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
