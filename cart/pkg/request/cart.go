package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AddCartItem is decoded with Quantity preset to 1, so an absent quantity
// defaults while an explicit zero or negative one still fails validation.
type AddCartItem struct {
	ProductName string          `validate:"required"      json:"product_name"`
	Price       decimal.Decimal `validate:"required,dgt0" json:"price"`
	Quantity    int32           `validate:"gte=1"         json:"quantity"`
	SessionID   string          `validate:"required"      json:"session_id"`
}

func (r AddCartItem) Normalized() AddCartItem {
	r.ProductName = strings.TrimSpace(r.ProductName)
	r.SessionID = strings.TrimSpace(r.SessionID)
	return r
}

type GetCart struct {
	SessionID string `validate:"required" json:"session_id"`
}

func (r GetCart) Normalized() GetCart {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return r
}
