package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordedQuery captures one statement issued against a fake.
type recordedQuery struct {
	sql  string
	args []any
}

// fakeRows is an empty result set.
type fakeRows struct {
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return false }
func (r *fakeRows) Scan(dest ...any) error                       { return pgx.ErrNoRows }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(dest ...any) error { return r.err }

// fakeQueryer records every statement and returns empty results.
type fakeQueryer struct {
	queries []recordedQuery
}

func (q *fakeQueryer) record(sql string, args []any) {
	q.queries = append(q.queries, recordedQuery{sql: sql, args: args})
}

func (q *fakeQueryer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.record(sql, args)
	return pgconn.CommandTag{}, nil
}

func (q *fakeQueryer) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.record(sql, args)
	return &fakeRows{}, nil
}

func (q *fakeQueryer) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.record(sql, args)
	return fakeRow{err: pgx.ErrNoRows}
}

var _ queryer = (*fakeQueryer)(nil)

// fakeTx records Exec calls and can fail a chosen one. Only the methods the
// stores use inside transactions do real work.
type fakeTx struct {
	execs []recordedQuery
	// failOn makes the Nth Exec call (1-based) return failErr.
	failOn  int
	failErr error

	committed  bool
	rolledBack bool
}

var _ pgx.Tx = (*fakeTx)(nil)

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, recordedQuery{sql: sql, args: args})
	if t.failOn > 0 && len(t.execs) == t.failOn {
		if t.failErr == nil {
			t.failErr = errors.New("forced exec failure")
		}
		return pgconn.CommandTag{}, t.failErr
	}
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return &fakeRows{}, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{err: pgx.ErrNoRows}
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not supported")
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not supported")
}

func (t *fakeTx) Conn() *pgx.Conn { return nil }
