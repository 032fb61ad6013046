package repository

import (
	"context"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/query"

	"github.com/google/uuid"
)

type OperatorWriteQueries interface {
	UpdateOperatorLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID) error
}

type OperatorRepository struct {
	queries OperatorWriteQueries
	db      query.DBTX
}

func NewOperatorRepository(queries OperatorWriteQueries, db query.DBTX) *OperatorRepository {
	return &OperatorRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OperatorRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	err := r.queries.UpdateOperatorLastLogin(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update operator last login", err)
	}
	return nil
}
