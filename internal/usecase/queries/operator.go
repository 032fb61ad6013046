package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/mock_operator.go -package=queriesmock

import (
	"context"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

type OperatorQueries interface {
	GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error)
}

type OperatorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OperatorView, error)
	FindByEmail(ctx context.Context, email string) (*OperatorView, string, error)
}

type operatorQueriesImpl struct {
	readStore OperatorReadStore
}

func NewOperatorQueries(readStore OperatorReadStore) OperatorQueries {
	return &operatorQueriesImpl{
		readStore: readStore,
	}
}

func (q *operatorQueriesImpl) GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error) {
	op, err := q.readStore.FindByID(ctx, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOperatorNotFound
		}
		return nil, err
	}

	if !op.IsActive {
		return nil, errs.ErrOperatorInactive
	}

	return op, nil
}
