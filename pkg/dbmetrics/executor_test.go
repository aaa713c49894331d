package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	pool := Wrap(&sql.DB{}, nil, "test")

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, pool, GetExecutor(ctx, pool))

	tx := &fakeTx{}
	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, pool))

	got, ok := TxFromContext(txCtx)
	assert.True(t, ok)
	assert.Same(t, tx, got)
}
