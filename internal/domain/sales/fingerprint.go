package sales

import (
	"crypto/sha512"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Fingerprint código de verificación de una venta confirmada: SHA-384 hexadecimal de
// ID + fecha UTC (RFC3339) + cliente + (productId + qty + precio) por línea + total.
// Los montos van sin separador de miles y con dos decimales (ej: 1500.00).
// Sirve para detectar comprobantes alterados; no reemplaza una firma.
func Fingerprint(s *entity.Sale) string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.ID)
	b.WriteString(s.Date.UTC().Format("2006-01-02T15:04:05Z07:00"))
	b.WriteString(s.ClientID)
	for _, it := range s.Items {
		b.WriteString(it.ProductID)
		b.WriteString(strconv.Itoa(it.Qty))
		b.WriteString(formatAmount(it.Price))
	}
	b.WriteString(formatAmount(s.Total))

	hash := sha512.Sum384([]byte(b.String()))
	return hex.EncodeToString(hash[:])
}

// ShortFingerprint primeros 16 caracteres, para imprimir.
func ShortFingerprint(s *entity.Sale) string {
	fp := Fingerprint(s)
	if len(fp) > 16 {
		return fp[:16]
	}
	return fp
}

func formatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
