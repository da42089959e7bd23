package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx records the statements the postgres repositories run inside a
// transaction. Unused pgx.Tx methods panic through the nil embedded interface.
type fakeTx struct {
	pgx.Tx
	execs   []string
	batched int
	nextID  int64
	execErr error
}

func (tx *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	tx.execs = append(tx.execs, sql)
	return pgconn.CommandTag{}, tx.execErr
}

func (tx *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return fakeRow{id: tx.nextID}
}

func (tx *fakeTx) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	tx.batched += b.Len()
	return &fakeBatchResults{}
}

type fakeRow struct{ id int64 }

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != 1 {
		return errors.New("unexpected scan")
	}
	p, ok := dest[0].(*int64)
	if !ok {
		return errors.New("unexpected scan target")
	}
	*p = r.id
	return nil
}

type fakeBatchResults struct{ pgx.BatchResults }

func (fakeBatchResults) Exec() (pgconn.CommandTag, error) { return pgconn.CommandTag{}, nil }
func (fakeBatchResults) Close() error                      { return nil }

// fakeTransactor runs fn against tx and reports fn's error.
type fakeTransactor struct {
	tx    *fakeTx
	calls int
}

func (t *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	t.calls++
	return fn(ctx, t.tx)
}
