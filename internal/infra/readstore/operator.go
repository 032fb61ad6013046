package readstore

import (
	"context"

	"github.com/google/uuid"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/queries"
)

type OperatorReadQueries interface {
	FindOperatorByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Operators, error)
	FindOperatorByEmail(ctx context.Context, db query.DBTX, email string) (query.Operators, error)
}

type OperatorReadStore struct {
	queries OperatorReadQueries
	db      query.DBTX
}

func NewOperatorReadStore(queries OperatorReadQueries, db query.DBTX) *OperatorReadStore {
	return &OperatorReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OperatorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OperatorView, error) {
	row, err := r.queries.FindOperatorByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find operator by ID", err)
	}

	return toOperatorView(row), nil
}

func (r *OperatorReadStore) FindByEmail(ctx context.Context, email string) (*queries.OperatorView, string, error) {
	row, err := r.queries.FindOperatorByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find operator by email", err)
	}

	return toOperatorView(row), row.PasswordHash, nil
}

func toOperatorView(row query.Operators) *queries.OperatorView {
	return &queries.OperatorView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
