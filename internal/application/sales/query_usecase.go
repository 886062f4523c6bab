package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	domainsales "github.com/jhoicas/Tienda-api/internal/domain/sales"
)

// QueryUseCase lecturas sobre el ledger: listado, detalle, comprobante y reporte.
type QueryUseCase struct {
	ledger   repository.SaleRepository
	clients  repository.ClientReader
	users    repository.UserRepository
	receipts ReceiptRenderer
}

// NewQueryUseCase construye el caso de uso. receipts puede ser nil si no se exponen comprobantes.
func NewQueryUseCase(
	ledger repository.SaleRepository,
	clients repository.ClientReader,
	users repository.UserRepository,
	receipts ReceiptRenderer,
) *QueryUseCase {
	return &QueryUseCase{ledger: ledger, clients: clients, users: users, receipts: receipts}
}

// List ventas en orden de confirmación.
func (uc *QueryUseCase) List() ([]dto.SaleResponse, error) {
	all, err := uc.ledger.All()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(all))
	for _, s := range all {
		if s == nil {
			continue
		}
		out = append(out, *ToSaleResponse(s))
	}
	return out, nil
}

// Get una venta por ID.
func (uc *QueryUseCase) Get(id string) (*dto.SaleResponse, error) {
	s, err := uc.ledger.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &domain.NotFoundError{Kind: "venta", ID: id}
	}
	return ToSaleResponse(s), nil
}

// Report calcula el resumen sobre el historial completo. Se recalcula en cada llamada.
func (uc *QueryUseCase) Report() (*dto.ReportResponse, error) {
	all, err := uc.ledger.All()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	return toReportResponse(domainsales.Compute(all, clients)), nil
}

// Receipt genera el PDF de la venta con los datos de la tienda del usuario.
func (uc *QueryUseCase) Receipt(ctx context.Context, userID, saleID string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, fmt.Errorf("comprobantes no configurados")
	}
	s, err := uc.ledger.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &domain.NotFoundError{Kind: "venta", ID: saleID}
	}
	header := ReceiptHeader{}
	if uc.users != nil && userID != "" {
		u, err := uc.users.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if u != nil {
			header.StoreName = u.StoreName
			header.StoreImage = u.StoreImage
		}
	}
	client, err := uc.clients.GetByID(s.ClientID)
	if err != nil {
		return nil, err
	}
	header.Client = client
	return uc.receipts.RenderReceipt(ctx, s, header)
}
