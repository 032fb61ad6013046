//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx only implements what the unit of work calls directly.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs []*fakeTx
}

func (b *fakeBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func newTestUoW() (*PostgresUoW, *fakeBeginner) {
	b := &fakeBeginner{}
	u := newPostgresUoW(b, query.New())
	u.base = time.Millisecond
	return u, b
}

func TestWithinCommits(t *testing.T) {
	u, b := newTestUoW()

	err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
		assert.NotNil(t, tx.Bookings())
		assert.Same(t, tx.Bookings(), tx.Bookings())
		assert.NotNil(t, tx.Operators())
		return nil
	})

	require.NoError(t, err)
	require.Len(t, b.txs, 1)
	assert.True(t, b.txs[0].committed)
	assert.False(t, b.txs[0].rolledBack)
}

func TestWithinRetriesSerializationFailures(t *testing.T) {
	u, b := newTestUoW()
	calls := 0

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, b.txs, 3)
	assert.True(t, b.txs[0].rolledBack)
	assert.True(t, b.txs[2].committed)
}

func TestWithinGivesUpAfterMaxRetries(t *testing.T) {
	u, _ := newTestUoW()
	calls := 0

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		calls++
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Equal(t, maxRetries+1, calls)
}

func TestWithinDoesNotRetryOtherErrors(t *testing.T) {
	u, b := newTestUoW()

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	require.Len(t, b.txs, 1)
	assert.True(t, b.txs[0].rolledBack)
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		got := calculateBackoff(attempt, base)
		min := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, min)
		assert.Less(t, got, min+min/5+time.Nanosecond)
	}
}
