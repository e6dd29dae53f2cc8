package request

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/readify/shop/internal/validate"
)

func TestAddCartItemDecodeDefaults(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		expectedQuantity int32
		expectedErr      bool
	}{
		{
			name:             "absent quantity defaults to one",
			body:             `{"product_name":"Kaos Premium Cotton","price":"149000","session_id":"session_abc"}`,
			expectedQuantity: 1,
		},
		{
			name:        "explicit zero quantity is rejected",
			body:        `{"product_name":"Kaos Premium Cotton","price":"149000","quantity":0,"session_id":"session_abc"}`,
			expectedErr: true,
		},
		{
			name:        "negative quantity is rejected",
			body:        `{"product_name":"Kaos Premium Cotton","price":"149000","quantity":-2,"session_id":"session_abc"}`,
			expectedErr: true,
		},
		{
			name:             "explicit quantity is kept",
			body:             `{"product_name":"Kaos Premium Cotton","price":"149000","quantity":3,"session_id":"session_abc"}`,
			expectedQuantity: 3,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reqBody := AddCartItem{Quantity: 1}
			err := json.NewDecoder(strings.NewReader(test.body)).Decode(&reqBody)
			assert.NoError(t, err)

			err = validate.Get().StructCtx(context.Background(), reqBody.Normalized())
			if test.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, test.expectedQuantity, reqBody.Quantity)
		})
	}
}

func TestAddCartItemValidation(t *testing.T) {
	tests := []struct {
		name        string
		input       AddCartItem
		expectedErr bool
	}{
		{
			name: "valid item",
			input: AddCartItem{
				ProductName: "Sepatu Sport Premium",
				Price:       decimal.NewFromInt(899000),
				Quantity:    1,
				SessionID:   "session_abc",
			},
		},
		{
			name: "whitespace product name is rejected",
			input: AddCartItem{
				ProductName: "   ",
				Price:       decimal.NewFromInt(899000),
				Quantity:    1,
				SessionID:   "session_abc",
			},
			expectedErr: true,
		},
		{
			name: "whitespace session id is rejected",
			input: AddCartItem{
				ProductName: "Sepatu Sport Premium",
				Price:       decimal.NewFromInt(899000),
				Quantity:    1,
				SessionID:   "\t ",
			},
			expectedErr: true,
		},
		{
			name: "zero price is rejected",
			input: AddCartItem{
				ProductName: "Sepatu Sport Premium",
				Price:       decimal.Zero,
				Quantity:    1,
				SessionID:   "session_abc",
			},
			expectedErr: true,
		},
		{
			name: "negative price is rejected",
			input: AddCartItem{
				ProductName: "Sepatu Sport Premium",
				Price:       decimal.NewFromInt(-1),
				Quantity:    1,
				SessionID:   "session_abc",
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

func TestNormalizedTrimsSurroundingWhitespace(t *testing.T) {
	reqBody := AddCartItem{
		ProductName: "  Headphone Wireless  ",
		SessionID:   " session_abc ",
	}.Normalized()

	assert.EqualValues(t, "Headphone Wireless", reqBody.ProductName)
	assert.EqualValues(t, "session_abc", reqBody.SessionID)
}
