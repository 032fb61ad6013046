//go:build unit || e2e

package builder

import (
	"time"

	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OperatorBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewOperatorBuilder() *OperatorBuilder {
	return &OperatorBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
	}
}

func (o *OperatorBuilder) With(mutate func(*OperatorBuilder)) *OperatorBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OperatorBuilder) BuildDomain() (*operator.Operator, error) {
	email, err := operator.NewEmail(o.Email)
	if err != nil {
		return nil, err
	}

	role, err := operator.NewRole(o.Role)
	if err != nil {
		return nil, err
	}

	op := operator.NewOperator(email, o.PasswordHash, role, time.Now())
	if !o.IsActive {
		op.Deactivate(time.Now())
	}
	return op, nil
}

func (o *OperatorBuilder) BuildInfra() query.Operators {
	now := time.Now()
	return query.Operators{
		ID:           o.ID,
		Email:        o.Email,
		PasswordHash: o.PasswordHash,
		Role:         o.Role,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     o.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (o *OperatorBuilder) BuildReadModel() *queries.OperatorView {
	return &queries.OperatorView{
		ID:       o.ID,
		Email:    o.Email,
		Role:     o.Role,
		IsActive: o.IsActive,
	}
}

// Fluent builder methods
func (o *OperatorBuilder) WithEmail(email string) *OperatorBuilder {
	o.Email = email
	return o
}

func (o *OperatorBuilder) WithRole(role string) *OperatorBuilder {
	o.Role = role
	return o
}

func (o *OperatorBuilder) WithPasswordHash(hash string) *OperatorBuilder {
	o.PasswordHash = hash
	return o
}

func (o *OperatorBuilder) AsInactive() *OperatorBuilder {
	o.IsActive = false
	return o
}
