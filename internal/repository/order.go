package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findRecentOrders = `-- name: FindRecentOrders :many
SELECT id, customer_name, customer_email, total, status, created_at, updated_at
FROM orders
ORDER BY created_at DESC
LIMIT $1
`

func (q *Queries) FindRecentOrders(c context.Context, limit int32) ([]Order, error) {
	rows, err := q.db.Query(c, findRecentOrders, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, customer_name, customer_email, total, status, created_at, updated_at
`

type UpdateOrderStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateOrderStatus(c context.Context, arg UpdateOrderStatusParams) (Order, error) {
	row := q.db.QueryRow(c, updateOrderStatus, arg.ID, arg.Status)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const getDashboardStats = `-- name: GetDashboardStats :one
SELECT
    (SELECT count(*) FROM products)                                     AS total_products,
    (SELECT count(*) FROM orders)                                       AS total_orders,
    (SELECT coalesce(sum(total), 0) FROM orders
     WHERE status <> 'cancelled')                                       AS total_revenue,
    (SELECT count(DISTINCT customer_email) FROM orders)                 AS total_customers
`

type GetDashboardStatsRow struct {
	TotalProducts  int64
	TotalOrders    int64
	TotalRevenue   pgtype.Numeric
	TotalCustomers int64
}

func (q *Queries) GetDashboardStats(c context.Context) (GetDashboardStatsRow, error) {
	row := q.db.QueryRow(c, getDashboardStats)
	var s GetDashboardStatsRow
	err := row.Scan(&s.TotalProducts, &s.TotalOrders, &s.TotalRevenue, &s.TotalCustomers)
	return s, err
}
