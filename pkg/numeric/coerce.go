// Package numeric define la política única de coerción de cantidades.
//
// Cualquier valor que no sea un número finito representable como int (texto no
// numérico, null, NaN, fuera de rango, booleanos, objetos) se interpreta como 0
// en lugar de propagar un error o un valor no numérico. Se aplica al decodificar
// cantidades persistidas y al sumarlas en los reportes.
package numeric

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CoerceInt convierte v a entero. ok=false indica que v no era numérico y se usó 0.
// Los valores con decimales se truncan hacia cero.
func CoerceInt(v interface{}) (n int, ok bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case json.Number:
		return CoerceInt(x.String())
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, false
		}
		return fromFloat(f)
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

// fromFloat fuera del rango de int es no numérico, igual que NaN o infinito.
func fromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= maxIntFloat || f < -maxIntFloat {
		return 0, false
	}
	return int(f), true
}

// maxIntFloat es 2^63 (o 2^31 en plataformas de 32 bits), el primer float que no cabe en int.
const maxIntFloat = float64(math.MaxInt/2+1) * 2
