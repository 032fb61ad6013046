package query

import (
	"context"

	"github.com/google/uuid"
)

const operatorColumns = `id, email, password_hash, role, last_login, is_active, created_at, updated_at`

const findOperatorByEmail = `-- name: FindOperatorByEmail :one
SELECT ` + operatorColumns + `
FROM operators
WHERE email = $1
`

func (q *Queries) FindOperatorByEmail(ctx context.Context, db DBTX, email string) (Operators, error) {
	row := db.QueryRow(ctx, findOperatorByEmail, email)
	var i Operators
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.LastLogin,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findOperatorByID = `-- name: FindOperatorByID :one
SELECT ` + operatorColumns + `
FROM operators
WHERE id = $1
`

func (q *Queries) FindOperatorByID(ctx context.Context, db DBTX, id uuid.UUID) (Operators, error) {
	row := db.QueryRow(ctx, findOperatorByID, id)
	var i Operators
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.LastLogin,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateOperatorLastLogin = `-- name: UpdateOperatorLastLogin :exec
UPDATE operators
SET last_login = NOW(), updated_at = NOW()
WHERE id = $1
`

func (q *Queries) UpdateOperatorLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, updateOperatorLastLogin, id)
	return err
}

const createOperator = `-- name: CreateOperator :one
INSERT INTO operators (email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO NOTHING
RETURNING id
`

type CreateOperatorParams struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	IsActive     bool   `json:"is_active"`
}

func (q *Queries) CreateOperator(ctx context.Context, db DBTX, arg CreateOperatorParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createOperator,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.IsActive,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
