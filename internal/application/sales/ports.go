package sales

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ReceiptHeader datos de cabecera del comprobante. Client es nil si el cliente fue borrado.
type ReceiptHeader struct {
	StoreName  string
	StoreImage string
	Client     *entity.Client
}

// ReceiptRenderer genera el comprobante de una venta (PDF) a partir de la venta guardada.
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, sale *entity.Sale, header ReceiptHeader) ([]byte, error)
}

// CommitObserver recibe el resultado de cada confirmación (métricas).
type CommitObserver interface {
	SaleCommitted(sale *entity.Sale)
	CommitRejected(reason string)
}

type nopObserver struct{}

func (nopObserver) SaleCommitted(*entity.Sale) {}
func (nopObserver) CommitRejected(string)      {}
