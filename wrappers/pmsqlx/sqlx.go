package pmsqlx

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/perfmonio/perfmon-go/track"
)

// DB wraps a *sqlx.DB so every database call records a section.
type DB struct {
	// wdb is not embedded so new *sqlx.DB methods fail compilation here
	// instead of silently bypassing instrumentation.
	wdb *sqlx.DB
	reg *track.Registry
}

// WrapDB returns a DB recording one section on reg per database call,
// named by the call verb and query text, in microseconds.
func WrapDB(reg *track.Registry, s *sqlx.DB) *DB {
	return &DB{wdb: s, reg: reg}
}

// GetWrappedDB returns the underlying sqlx handle.
func (db *DB) GetWrappedDB() *sqlx.DB {
	return db.wdb
}

func record(reg *track.Registry, verb, query string, start time.Time) {
	name := "sqlx." + verb
	if query != "" {
		name += ": " + query
	}
	id := reg.BeginAt(name, track.Microseconds, start)
	_ = reg.End(id)
}

func (db *DB) Get(dest interface{}, query string, args ...interface{}) error {
	defer record(db.reg, "get", query, time.Now())
	return db.wdb.Get(dest, query, args...)
}

func (db *DB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	defer record(db.reg, "get", query, time.Now())
	return db.wdb.GetContext(ctx, dest, query, args...)
}

func (db *DB) Select(dest interface{}, query string, args ...interface{}) error {
	defer record(db.reg, "select", query, time.Now())
	return db.wdb.Select(dest, query, args...)
}

func (db *DB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	defer record(db.reg, "select", query, time.Now())
	return db.wdb.SelectContext(ctx, dest, query, args...)
}

func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	defer record(db.reg, "exec", query, time.Now())
	return db.wdb.Exec(query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer record(db.reg, "exec", query, time.Now())
	return db.wdb.ExecContext(ctx, query, args...)
}

func (db *DB) Queryx(query string, args ...interface{}) (*sqlx.Rows, error) {
	defer record(db.reg, "queryx", query, time.Now())
	return db.wdb.Queryx(query, args...)
}

func (db *DB) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	defer record(db.reg, "queryx", query, time.Now())
	return db.wdb.QueryxContext(ctx, query, args...)
}

func (db *DB) QueryRowx(query string, args ...interface{}) *sqlx.Row {
	defer record(db.reg, "query_rowx", query, time.Now())
	return db.wdb.QueryRowx(query, args...)
}

func (db *DB) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	defer record(db.reg, "query_rowx", query, time.Now())
	return db.wdb.QueryRowxContext(ctx, query, args...)
}

func (db *DB) NamedExec(query string, arg interface{}) (sql.Result, error) {
	defer record(db.reg, "named_exec", query, time.Now())
	return db.wdb.NamedExec(query, arg)
}

func (db *DB) NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error) {
	defer record(db.reg, "named_exec", query, time.Now())
	return db.wdb.NamedExecContext(ctx, query, arg)
}

func (db *DB) PrepareNamed(query string) (*sqlx.NamedStmt, error) {
	defer record(db.reg, "prepare_named", query, time.Now())
	return db.wdb.PrepareNamed(query)
}

func (db *DB) PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error) {
	defer record(db.reg, "prepare_named", query, time.Now())
	return db.wdb.PrepareNamedContext(ctx, query)
}

func (db *DB) Beginx() (*Tx, error) {
	defer record(db.reg, "beginx", "", time.Now())
	tx, err := db.wdb.Beginx()
	if err != nil {
		return nil, err
	}
	return &Tx{wtx: tx, reg: db.reg}, nil
}

func (db *DB) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	defer record(db.reg, "beginx", "", time.Now())
	tx, err := db.wdb.BeginTxx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{wtx: tx, reg: db.reg}, nil
}

func (db *DB) Close() error {
	defer record(db.reg, "close", "", time.Now())
	return db.wdb.Close()
}

// Tx wraps a *sqlx.Tx, recording a section per call.
type Tx struct {
	wtx *sqlx.Tx
	reg *track.Registry
}

// GetWrappedTx returns the underlying sqlx transaction.
func (tx *Tx) GetWrappedTx() *sqlx.Tx {
	return tx.wtx
}

func (tx *Tx) Exec(query string, args ...interface{}) (sql.Result, error) {
	defer record(tx.reg, "tx.exec", query, time.Now())
	return tx.wtx.Exec(query, args...)
}

func (tx *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer record(tx.reg, "tx.exec", query, time.Now())
	return tx.wtx.ExecContext(ctx, query, args...)
}

func (tx *Tx) Get(dest interface{}, query string, args ...interface{}) error {
	defer record(tx.reg, "tx.get", query, time.Now())
	return tx.wtx.Get(dest, query, args...)
}

func (tx *Tx) Select(dest interface{}, query string, args ...interface{}) error {
	defer record(tx.reg, "tx.select", query, time.Now())
	return tx.wtx.Select(dest, query, args...)
}

func (tx *Tx) Commit() error {
	defer record(tx.reg, "tx.commit", "", time.Now())
	return tx.wtx.Commit()
}

func (tx *Tx) Rollback() error {
	defer record(tx.reg, "tx.rollback", "", time.Now())
	return tx.wtx.Rollback()
}
