package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericDecimalRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input decimal.Decimal
	}{
		{name: "integer price", input: decimal.NewFromInt(149000)},
		{name: "fractional price", input: decimal.RequireFromString("19.99")},
		{name: "zero", input: decimal.Zero},
		{name: "negative", input: decimal.NewFromInt(-42)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := DecimalFromNumeric(NumericFromDecimal(test.input))
			assert.True(
				t,
				test.input.Equal(actual),
				"expected %s got %s",
				test.input,
				actual,
			)
		})
	}
}

func TestDecimalFromInvalidNumericIsZero(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(DecimalFromNumeric(pgtype.Numeric{})))
}
