package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleItem_UnmarshalQtyTolerante(t *testing.T) {
	raw := `[
		{"productId":"a","name":"A","qty":3,"price":10,"subtotal":30},
		{"productId":"b","name":"B","qty":"4","price":"2.5","subtotal":"10"},
		{"productId":"c","name":"C","qty":"muchos","price":1,"subtotal":0},
		{"productId":"d","name":"D","price":1,"subtotal":0},
		{"productId":"e","name":"E","qty":null,"price":1,"subtotal":0}
	]`
	var items []SaleItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 5)

	assert.Equal(t, 3, items[0].Qty)
	assert.Equal(t, "A", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 4, items[1].Qty)
	assert.True(t, items[1].Price.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, 0, items[2].Qty)
	assert.Equal(t, 0, items[3].Qty)
	assert.Equal(t, 0, items[4].Qty)
}

func TestSale_CloneIndependiente(t *testing.T) {
	s := &Sale{
		ID:    "s1",
		Items: []SaleItem{{ProductID: "a", Name: "A", Qty: 1, Price: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(5)}},
		Total: decimal.NewFromInt(5),
	}
	c := s.Clone()
	c.Items[0].Name = "otro"
	c.Items[0].Qty = 99

	assert.Equal(t, "A", s.Items[0].Name)
	assert.Equal(t, 1, s.Items[0].Qty)
}

func TestSumSubtotals(t *testing.T) {
	items := []SaleItem{
		{Subtotal: decimal.NewFromInt(30)},
		{Subtotal: decimal.RequireFromString("0.5")},
	}
	assert.True(t, SumSubtotals(items).Equal(decimal.RequireFromString("30.5")))
	assert.True(t, SumSubtotals(nil).IsZero())
}
