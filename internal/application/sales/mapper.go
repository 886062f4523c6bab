package sales

import (
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	domainsales "github.com/jhoicas/Tienda-api/internal/domain/sales"
)

func toItemResponses(items []entity.SaleItem) []dto.SaleItemResponse {
	out := make([]dto.SaleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			Subtotal:  it.Subtotal,
		})
	}
	return out
}

// ToSaleResponse convierte una venta del ledger a su DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:         s.ID,
		Date:       s.Date,
		ClientID:   s.ClientID,
		ClientName: s.ClientName,
		Items:      toItemResponses(s.Items),
		Total:      s.Total,
	}
}

func toReportResponse(r domainsales.Report) *dto.ReportResponse {
	out := &dto.ReportResponse{
		TotalSales:   r.TotalSales,
		TotalRevenue: r.TotalRevenue,
		TotalItems:   r.TotalItems,
	}
	if r.TopClient != nil {
		out.TopClient = &dto.TopClientResponse{
			ClientID: r.TopClient.ClientID,
			Name:     r.TopClient.Name,
			Amount:   r.TopClient.Amount,
		}
	}
	if r.TopProduct != nil {
		out.TopProduct = &dto.TopProductResponse{
			ProductID: r.TopProduct.ProductID,
			Name:      r.TopProduct.Name,
			Qty:       r.TopProduct.Qty,
		}
	}
	return out
}
