package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// TopClient cliente con mayor monto acumulado.
type TopClient struct {
	ClientID string
	Name     string
	Amount   decimal.Decimal
}

// TopProduct producto con mayor cantidad vendida.
type TopProduct struct {
	ProductID string
	Name      string
	Qty       int
}

// Report métricas agregadas derivadas del ledger. No se almacena.
// TopClient y TopProduct son nil si no hay ventas.
type Report struct {
	TotalSales   int
	TotalRevenue decimal.Decimal
	TotalItems   int
	TopClient    *TopClient
	TopProduct   *TopProduct
}

// Compute calcula el reporte a partir de las ventas (en orden de confirmación) y los clientes actuales.
// Función pura: no modifica sus entradas.
//
// Nombre mostrado del cliente: el último nombre copiado en sus ventas; si no hay, el nombre
// actual en el Client Store; si el cliente fue borrado, su ID.
// Empates en TopClient/TopProduct: gana el primero encontrado en el orden del ledger.
func Compute(sales []*entity.Sale, clients []*entity.Client) Report {
	rep := Report{TotalRevenue: decimal.Zero}

	type clientAcc struct {
		id       string
		snapshot string
		amount   decimal.Decimal
	}
	type productAcc struct {
		id   string
		name string
		qty  int
	}
	var (
		clientOrder  []*clientAcc
		byClient     = make(map[string]*clientAcc)
		productOrder []*productAcc
		byProduct    = make(map[string]*productAcc)
	)

	for _, s := range sales {
		if s == nil {
			continue
		}
		rep.TotalSales++
		rep.TotalRevenue = rep.TotalRevenue.Add(s.Total)

		ca, ok := byClient[s.ClientID]
		if !ok {
			ca = &clientAcc{id: s.ClientID, amount: decimal.Zero}
			byClient[s.ClientID] = ca
			clientOrder = append(clientOrder, ca)
		}
		ca.amount = ca.amount.Add(s.Total)
		if s.ClientName != "" {
			ca.snapshot = s.ClientName
		}

		for _, it := range s.Items {
			// Qty ya viene coercionada (numeric.CoerceInt) al leer el ledger
			rep.TotalItems += it.Qty

			pa, ok := byProduct[it.ProductID]
			if !ok {
				pa = &productAcc{id: it.ProductID, name: it.Name}
				byProduct[it.ProductID] = pa
				productOrder = append(productOrder, pa)
			}
			pa.qty += it.Qty
		}
	}

	for _, ca := range clientOrder {
		if rep.TopClient == nil || ca.amount.GreaterThan(rep.TopClient.Amount) {
			rep.TopClient = &TopClient{ClientID: ca.id, Name: ca.snapshot, Amount: ca.amount}
		}
	}
	if rep.TopClient != nil && rep.TopClient.Name == "" {
		rep.TopClient.Name = clientDisplayName(rep.TopClient.ClientID, clients)
	}

	for _, pa := range productOrder {
		if rep.TopProduct == nil || pa.qty > rep.TopProduct.Qty {
			rep.TopProduct = &TopProduct{ProductID: pa.id, Name: pa.name, Qty: pa.qty}
		}
	}

	return rep
}

func clientDisplayName(id string, clients []*entity.Client) string {
	for _, c := range clients {
		if c != nil && c.ID == id && c.Name != "" {
			return c.Name
		}
	}
	return id
}
