package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// upsertCartItem consolidates the line item in one statement: the unique
// constraint on (session_id, product_name) turns a repeat add into a
// quantity increment. Price is deliberately absent from the update list so
// the first-seen price always wins. xmax = 0 only holds for a freshly
// inserted row, which tells insert and update apart.
const upsertCartItem = `-- name: UpsertCartItem :one
INSERT INTO cart_items (id, session_id, product_name, price, quantity)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (session_id, product_name) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity,
    updated_at = now()
RETURNING id, quantity, (xmax = 0) AS inserted
`

type UpsertCartItemParams struct {
	ID          uuid.UUID
	SessionID   string
	ProductName string
	Price       pgtype.Numeric
	Quantity    int32
}

type UpsertCartItemRow struct {
	ID       uuid.UUID
	Quantity int32
	Inserted bool
}

func (q *Queries) UpsertCartItem(
	c context.Context,
	arg UpsertCartItemParams,
) (UpsertCartItemRow, error) {
	row := q.db.QueryRow(c, upsertCartItem,
		arg.ID,
		arg.SessionID,
		arg.ProductName,
		arg.Price,
		arg.Quantity,
	)
	var i UpsertCartItemRow
	err := row.Scan(&i.ID, &i.Quantity, &i.Inserted)
	return i, err
}

const findCartItemsBySessionId = `-- name: FindCartItemsBySessionId :many
SELECT id, session_id, product_name, price, quantity, created_at, updated_at
FROM cart_items
WHERE session_id = $1
ORDER BY updated_at DESC
`

func (q *Queries) FindCartItemsBySessionId(
	c context.Context,
	sessionID string,
) ([]CartItem, error) {
	rows, err := q.db.Query(c, findCartItemsBySessionId, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CartItem{}
	for rows.Next() {
		var i CartItem
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.ProductName,
			&i.Price,
			&i.Quantity,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findCartItemBySessionIdAndProductName = `-- name: FindCartItemBySessionIdAndProductName :one
SELECT id, session_id, product_name, price, quantity, created_at, updated_at
FROM cart_items
WHERE session_id = $1 AND product_name = $2
`

type FindCartItemBySessionIdAndProductNameParams struct {
	SessionID   string
	ProductName string
}

func (q *Queries) FindCartItemBySessionIdAndProductName(
	c context.Context,
	arg FindCartItemBySessionIdAndProductNameParams,
) (CartItem, error) {
	row := q.db.QueryRow(c, findCartItemBySessionIdAndProductName, arg.SessionID, arg.ProductName)
	var i CartItem
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.ProductName,
		&i.Price,
		&i.Quantity,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
