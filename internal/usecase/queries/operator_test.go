//go:build unit

package queries

import (
	"context"
	"testing"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOperatorReadStore struct {
	mock.Mock
}

func (m *mockOperatorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*OperatorView, error) {
	args := m.Called(ctx, id)
	op, _ := args.Get(0).(*OperatorView)
	return op, args.Error(1)
}

func (m *mockOperatorReadStore) FindByEmail(ctx context.Context, email string) (*OperatorView, string, error) {
	args := m.Called(ctx, email)
	op, _ := args.Get(0).(*OperatorView)
	return op, args.String(1), args.Error(2)
}

func TestGetCurrentOperator(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		view    *OperatorView
		repoErr error
		wantErr error
	}{
		{name: "active operator", view: &OperatorView{ID: id, Email: "ops@example.com", Role: "operator", IsActive: true}},
		{name: "inactive operator", view: &OperatorView{ID: id, IsActive: false}, wantErr: errs.ErrOperatorInactive},
		{name: "unknown operator", repoErr: infra.WrapRepoErr("operator not found", nil, infra.KindNotFound), wantErr: errs.ErrOperatorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockOperatorReadStore)
			store.On("FindByID", mock.Anything, id).Return(tt.view, tt.repoErr)

			got, err := NewOperatorQueries(store).GetCurrentOperator(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}
}
