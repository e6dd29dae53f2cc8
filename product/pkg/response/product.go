package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageUrl    string          `json:"image_url"`
	Stock       int32           `json:"stock"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Pagination struct {
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int32 `json:"total_pages"`
}

type Products struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// NewProducts derives the pagination block from the total row count so the
// page math lives in one place.
func NewProducts(products []Product, page, limit int32, total int64) Products {
	totalPages := int32(total / int64(limit))
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Products{
		Products: products,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
