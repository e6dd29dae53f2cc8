package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartItem struct {
	ID          uuid.UUID
	SessionID   string
	ProductName string
	Price       pgtype.Numeric
	Quantity    int32
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Product struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	Price       pgtype.Numeric
	Category    pgtype.Text
	ImageUrl    pgtype.Text
	Stock       int32
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Order struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	Total         pgtype.Numeric
	Status        string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Admin struct {
	ID        uuid.UUID
	Email     string
	Password  string
	CreatedAt pgtype.Timestamptz
}
