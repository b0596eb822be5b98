package pmpop

import (
	"context"
	"database/sql"
	"math/rand"

	"github.com/gobuffalo/pop/v6"
	"github.com/jmoiron/sqlx"

	"github.com/perfmonio/perfmon-go/wrappers/pmsqlx"
)

// DB satisfies pop's store interface while delegating every call to a
// pmsqlx.DB, so apps using pop record one section per database call.
type DB struct {
	DB *pmsqlx.DB
	tx *pmsqlx.Tx
}

func (m *DB) Select(dest interface{}, query string, args ...interface{}) error {
	return m.DB.Select(dest, query, args...)
}

func (m *DB) Get(dest interface{}, query string, args ...interface{}) error {
	return m.DB.Get(dest, query, args...)
}

func (m *DB) NamedExec(query string, arg interface{}) (sql.Result, error) {
	return m.DB.NamedExec(query, arg)
}

func (m *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return m.DB.Exec(query, args...)
}

func (m *DB) PrepareNamed(query string) (*sqlx.NamedStmt, error) {
	return m.DB.PrepareNamed(query)
}

func (m *DB) Transaction() (*pop.Tx, error) {
	tx, err := m.DB.Beginx()
	if err != nil {
		return nil, err
	}
	m.tx = tx
	return &pop.Tx{
		ID: rand.Int(),
		Tx: tx.GetWrappedTx(),
	}, nil
}

func (m *DB) Rollback() error {
	return m.tx.Rollback()
}

func (m *DB) Commit() error {
	return m.tx.Commit()
}

func (m *DB) Close() error {
	return m.DB.Close()
}

func (m *DB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return m.DB.SelectContext(ctx, dest, query, args...)
}

func (m *DB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return m.DB.GetContext(ctx, dest, query, args...)
}

func (m *DB) NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error) {
	return m.DB.NamedExecContext(ctx, query, arg)
}

func (m *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return m.DB.ExecContext(ctx, query, args...)
}

func (m *DB) PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error) {
	return m.DB.PrepareNamedContext(ctx, query)
}

func (m *DB) TransactionContext(ctx context.Context) (*pop.Tx, error) {
	tx, err := m.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	m.tx = tx
	return &pop.Tx{
		ID: rand.Int(),
		Tx: tx.GetWrappedTx(),
	}, nil
}

func (m *DB) TransactionContextOptions(ctx context.Context, opts *sql.TxOptions) (*pop.Tx, error) {
	tx, err := m.DB.BeginTxx(ctx, opts)
	if err != nil {
		return nil, err
	}
	m.tx = tx
	return &pop.Tx{
		ID: rand.Int(),
		Tx: tx.GetWrappedTx(),
	}, nil
}
