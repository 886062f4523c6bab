// Package metrics expone métricas Prometheus de ventas y de la API HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	appsales "github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

var (
	salesCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tienda",
		Name:      "sales_committed_total",
		Help:      "Ventas confirmadas",
	})
	salesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tienda",
		Name:      "sales_rejected_total",
		Help:      "Confirmaciones rechazadas por motivo",
	}, []string{"reason"})
	salesRevenue = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tienda",
		Name:      "sales_revenue_total",
		Help:      "Suma de totales de ventas confirmadas",
	})
	itemsSold = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tienda",
		Name:      "items_sold_total",
		Help:      "Unidades vendidas",
	})
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tienda",
		Name:      "http_request_duration_seconds",
		Help:      "Latencia de peticiones HTTP",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

var _ appsales.CommitObserver = SalesObserver{}

// SalesObserver implementa sales.CommitObserver sobre los contadores globales.
type SalesObserver struct{}

func (SalesObserver) SaleCommitted(sale *entity.Sale) {
	salesCommitted.Inc()
	salesRevenue.Add(sale.Total.InexactFloat64())
	n := 0
	for _, it := range sale.Items {
		n += it.Qty
	}
	itemsSold.Add(float64(n))
}

func (SalesObserver) CommitRejected(reason string) {
	salesRejected.WithLabelValues(reason).Inc()
}

// ObserveHTTP registra la duración de una petición. route es el patrón, no la ruta concreta.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
