package request

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/readify/shop/internal/validate"
)

func TestProductValidation(t *testing.T) {
	tests := []struct {
		name        string
		input       Product
		expectedErr bool
	}{
		{
			name: "valid product",
			input: Product{
				Name:     "Kaos Premium Cotton",
				Price:    decimal.NewFromInt(149000),
				Category: "Fashion",
				Stock:    50,
			},
		},
		{
			name:        "missing name is rejected",
			input:       Product{Price: decimal.NewFromInt(149000)},
			expectedErr: true,
		},
		{
			name: "zero price is rejected",
			input: Product{
				Name:  "Kaos Premium Cotton",
				Price: decimal.Zero,
			},
			expectedErr: true,
		},
		{
			name: "negative stock is rejected",
			input: Product{
				Name:  "Kaos Premium Cotton",
				Price: decimal.NewFromInt(149000),
				Stock: -1,
			},
			expectedErr: true,
		},
		{
			name: "unknown status is rejected",
			input: Product{
				Name:   "Kaos Premium Cotton",
				Price:  decimal.NewFromInt(149000),
				Status: "archived",
			},
			expectedErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validate.Get().StructCtx(context.Background(), test.input.Normalized())
			if test.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFindProductsNormalizedDefaults(t *testing.T) {
	query := FindProducts{Search: "  kaos  "}.Normalized()

	assert.EqualValues(t, int32(1), query.Page)
	assert.EqualValues(t, int32(10), query.Limit)
	assert.EqualValues(t, "kaos", query.Search)
}
