package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"required,dgt0"`
	Category    string          `json:"category"`
	ImageUrl    string          `json:"image_url"   validate:"omitempty,url"`
	Stock       int32           `json:"stock"       validate:"gte=0"`
	Status      string          `json:"status"      validate:"omitempty,oneof=active inactive"`
}

func (p Product) Normalized() Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	p.ImageUrl = strings.TrimSpace(p.ImageUrl)
	if p.Status == "" {
		p.Status = "active"
	}
	return p
}

type FindProducts struct {
	Page     int32  `validate:"gte=1"`
	Limit    int32  `validate:"gte=1,lte=100"`
	Search   string `validate:"-"`
	Category string `validate:"-"`
}

// Normalized fills the paging defaults used when the query string omits them.
func (p FindProducts) Normalized() FindProducts {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = 10
	}
	p.Search = strings.TrimSpace(p.Search)
	p.Category = strings.TrimSpace(p.Category)
	return p
}
