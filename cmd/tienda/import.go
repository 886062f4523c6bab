package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

var productColumns = []string{"name", "description", "stock", "costPrice", "salePrice", "image"}

// parseProductsCSV lee el catálogo. La primera fila es la cabecera; las columnas se
// buscan por nombre (sin distinguir mayúsculas) y sólo "name" es obligatoria.
func parseProductsCSV(r io.Reader, latin1 bool) ([]dto.CreateProductRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx["name"]; !ok {
		return nil, errors.New("el CSV necesita la columna name")
	}

	field := func(rec []string, col string) string {
		i, ok := idx[strings.ToLower(col)]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []dto.CreateProductRequest
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		in := dto.CreateProductRequest{
			Name:        field(rec, productColumns[0]),
			Description: field(rec, productColumns[1]),
			Image:       field(rec, productColumns[5]),
		}
		if in.Name == "" {
			continue
		}
		if in.Stock, err = parseStock(field(rec, productColumns[2])); err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if in.CostPrice, err = parseMoney(field(rec, productColumns[3])); err != nil {
			return nil, fmt.Errorf("línea %d: costPrice: %w", line, err)
		}
		if in.SalePrice, err = parseMoney(field(rec, productColumns[4])); err != nil {
			return nil, fmt.Errorf("línea %d: salePrice: %w", line, err)
		}
		out = append(out, in)
	}
	return out, nil
}

// parseStock exige un entero; "2.0" se acepta, "2.7" no.
func parseStock(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.Equal(decimal.NewFromInt(int64(int(d.IntPart())))) {
		return 0, fmt.Errorf("stock inválido %q", s)
	}
	return int(d.IntPart()), nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimPrefix(s, "$"))
}
