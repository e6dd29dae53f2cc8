package repository

import (
	"github.com/shopspring/decimal"

	adminResponse "github.com/readify/shop/admin/pkg/response"
	cartResponse "github.com/readify/shop/cart/pkg/response"
	productResponse "github.com/readify/shop/product/pkg/response"
)

func (i CartItem) Response() cartResponse.CartItem {
	price := DecimalFromNumeric(i.Price)
	return cartResponse.CartItem{
		ID:          i.ID,
		ProductName: i.ProductName,
		Price:       price,
		Quantity:    i.Quantity,
		Subtotal:    price.Mul(decimal.NewFromInt(int64(i.Quantity))),
		CreatedAt:   i.CreatedAt.Time,
		UpdatedAt:   i.UpdatedAt.Time,
	}
}

func (p Product) Response() productResponse.Product {
	return productResponse.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description.String,
		Price:       DecimalFromNumeric(p.Price),
		Category:    p.Category.String,
		ImageUrl:    p.ImageUrl.String,
		Stock:       p.Stock,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (o Order) Response() adminResponse.Order {
	return adminResponse.Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Total:         DecimalFromNumeric(o.Total),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt.Time,
		UpdatedAt:     o.UpdatedAt.Time,
	}
}

func (s GetDashboardStatsRow) Response() adminResponse.Stats {
	return adminResponse.Stats{
		TotalProducts:  s.TotalProducts,
		TotalOrders:    s.TotalOrders,
		TotalRevenue:   DecimalFromNumeric(s.TotalRevenue),
		TotalCustomers: s.TotalCustomers,
	}
}
