package response

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		items    []CartItem
		expected Summary
	}{
		{
			name:     "empty cart has zero summary",
			items:    []CartItem{},
			expected: Summary{TotalItems: 0, TotalPrice: decimal.Zero, ItemCount: 0},
		},
		{
			name: "single line item",
			items: []CartItem{
				{
					ProductName: "Kaos Premium Cotton",
					Price:       decimal.NewFromInt(149000),
					Quantity:    3,
					Subtotal:    decimal.NewFromInt(447000),
				},
			},
			expected: Summary{
				TotalItems: 3,
				TotalPrice: decimal.NewFromInt(447000),
				ItemCount:  1,
			},
		},
		{
			name: "multiple line items sum quantities and subtotals",
			items: []CartItem{
				{
					ProductName: "Kaos Premium Cotton",
					Price:       decimal.NewFromInt(149000),
					Quantity:    2,
					Subtotal:    decimal.NewFromInt(298000),
				},
				{
					ProductName: "Headphone Wireless",
					Price:       decimal.NewFromInt(499000),
					Quantity:    1,
					Subtotal:    decimal.NewFromInt(499000),
				},
			},
			expected: Summary{
				TotalItems: 3,
				TotalPrice: decimal.NewFromInt(797000),
				ItemCount:  2,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := Summarize(test.items)
			assert.EqualValues(t, test.expected.TotalItems, actual.TotalItems)
			assert.EqualValues(t, test.expected.ItemCount, actual.ItemCount)
			assert.True(t, test.expected.TotalPrice.Equal(actual.TotalPrice))
		})
	}
}

func TestNewCartSummaryMatchesItems(t *testing.T) {
	items := []CartItem{
		{
			ProductName: "Smartphone Terbaru",
			Price:       decimal.NewFromInt(2999000),
			Quantity:    1,
			Subtotal:    decimal.NewFromInt(2999000),
		},
	}

	cart := NewCart(items)

	assert.Len(t, cart.CartItems, 1)
	assert.EqualValues(t, int32(1), cart.Summary.TotalItems)
	assert.True(t, decimal.NewFromInt(2999000).Equal(cart.Summary.TotalPrice))
}

func TestEmptyCartMarshalsWithZeroSummary(t *testing.T) {
	body, err := json.Marshal(EmptyCart())
	assert.NoError(t, err)
	assert.JSONEq(
		t,
		`{"cart_items":[],"summary":{"total_items":0,"total_price":"0","item_count":0}}`,
		string(body),
	)
}
