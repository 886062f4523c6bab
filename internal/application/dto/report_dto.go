package dto

import "github.com/shopspring/decimal"

// TopClientResponse cliente con mayor monto acumulado.
type TopClientResponse struct {
	ClientID string          `json:"clientId"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
}

// TopProductResponse producto más vendido por cantidad.
type TopProductResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
}

// ReportResponse resumen del historial de ventas. Top* son null sin ventas.
type ReportResponse struct {
	TotalSales   int                 `json:"totalSales"`
	TotalRevenue decimal.Decimal     `json:"totalRevenue"`
	TotalItems   int                 `json:"totalItems"`
	TopClient    *TopClientResponse  `json:"topClient"`
	TopProduct   *TopProductResponse `json:"topProduct"`
}
