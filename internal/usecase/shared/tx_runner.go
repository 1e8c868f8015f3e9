package shared

import (
	"context"

	"storefront-checkout/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner abstracts the transaction boundary so command implementations
// can be exercised without a live pool.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx db.DBTX) error) error
}

type PgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxTxRunner(pool *pgxpool.Pool) *PgxTxRunner {
	return &PgxTxRunner{pool: pool}
}

func (r *PgxTxRunner) WithinTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}
