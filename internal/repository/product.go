package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertProduct = `-- name: InsertProduct :one
INSERT INTO products (id, name, description, price, category, image_url, stock, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, name, description, price, category, image_url, stock, status, created_at, updated_at
`

type InsertProductParams struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	Price       pgtype.Numeric
	Category    pgtype.Text
	ImageUrl    pgtype.Text
	Stock       int32
	Status      string
}

func (q *Queries) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(c, insertProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Category,
		arg.ImageUrl,
		arg.Stock,
		arg.Status,
	)
	return scanProduct(row)
}

const updateProduct = `-- name: UpdateProduct :one
UPDATE products
SET name        = $2,
    description = $3,
    price       = $4,
    category    = $5,
    image_url   = $6,
    stock       = $7,
    status      = $8,
    updated_at  = now()
WHERE id = $1
RETURNING id, name, description, price, category, image_url, stock, status, created_at, updated_at
`

type UpdateProductParams struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	Price       pgtype.Numeric
	Category    pgtype.Text
	ImageUrl    pgtype.Text
	Stock       int32
	Status      string
}

func (q *Queries) UpdateProduct(c context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(c, updateProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Category,
		arg.ImageUrl,
		arg.Stock,
		arg.Status,
	)
	return scanProduct(row)
}

const deleteProduct = `-- name: DeleteProduct :execrows
DELETE FROM products WHERE id = $1
`

func (q *Queries) DeleteProduct(c context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(c, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findProductById = `-- name: FindProductById :one
SELECT id, name, description, price, category, image_url, stock, status, created_at, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRow(c, findProductById, id)
	return scanProduct(row)
}

const findProducts = `-- name: FindProducts :many
SELECT id, name, description, price, category, image_url, stock, status, created_at, updated_at
FROM products
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR category = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

type FindProductsParams struct {
	Search   string
	Category string
	Limit    int32
	Offset   int32
}

func (q *Queries) FindProducts(c context.Context, arg FindProductsParams) ([]Product, error) {
	rows, err := q.db.Query(c, findProducts, arg.Search, arg.Category, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Category,
			&p.ImageUrl,
			&p.Stock,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

const countProducts = `-- name: CountProducts :one
SELECT count(*)
FROM products
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR category = $2)
`

type CountProductsParams struct {
	Search   string
	Category string
}

func (q *Queries) CountProducts(c context.Context, arg CountProductsParams) (int64, error) {
	row := q.db.QueryRow(c, countProducts, arg.Search, arg.Category)
	var count int64
	err := row.Scan(&count)
	return count, err
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scannable) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.ImageUrl,
		&p.Stock,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
