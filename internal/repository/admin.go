package repository

import (
	"context"
)

const findAdminByEmail = `-- name: FindAdminByEmail :one
SELECT id, email, password, created_at
FROM admins
WHERE email = $1
`

func (q *Queries) FindAdminByEmail(c context.Context, email string) (Admin, error) {
	row := q.db.QueryRow(c, findAdminByEmail, email)
	var a Admin
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.CreatedAt)
	return a, err
}
