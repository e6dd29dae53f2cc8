package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ActionAdded   = "added"
	ActionUpdated = "updated"
)

type AddCartItem struct {
	CartId uuid.UUID `json:"cart_id"`
	Action string    `json:"action"`
}

type CartItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Summary struct {
	TotalItems int32           `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	ItemCount  int             `json:"item_count"`
}

type Cart struct {
	CartItems []CartItem `json:"cart_items"`
	Summary   Summary    `json:"summary"`
}

// NewCart derives the summary from the items so the two can never disagree.
func NewCart(items []CartItem) Cart {
	return Cart{CartItems: items, Summary: Summarize(items)}
}

// EmptyCart is both the empty-cart and the failure shape; callers tell them
// apart by the success flag on the envelope.
func EmptyCart() Cart {
	return Cart{CartItems: []CartItem{}, Summary: Summary{TotalPrice: decimal.Zero}}
}

func Summarize(items []CartItem) Summary {
	summary := Summary{TotalPrice: decimal.Zero, ItemCount: len(items)}
	for _, item := range items {
		summary.TotalItems += item.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(item.Subtotal)
	}
	return summary
}
