package pmsql

import (
	"context"
	"database/sql"
	"time"

	"github.com/perfmonio/perfmon-go/track"
)

// DB wraps a *sql.DB so every database call records a section.
type DB struct {
	// wdb is the wrapped sql db. It is not embedded because it's better
	// to fail compilation if some methods are missing than it is to
	// silently not instrument those methods: calls absent from the
	// report would look like they aren't happening when they just fell
	// through to the underlying *sql.DB.
	wdb *sql.DB
	reg *track.Registry
}

// WrapDB returns a DB recording one section on reg per database call.
// Sections use microsecond resolution and are named by the call verb and
// query text, e.g. "sql.query: SELECT id FROM flavors".
func WrapDB(reg *track.Registry, s *sql.DB) *DB {
	return &DB{wdb: s, reg: reg}
}

// DB returns the underlying database handle.
func (db *DB) DB() *sql.DB {
	return db.wdb
}

func record(reg *track.Registry, verb, query string, start time.Time) {
	name := "sql." + verb
	if query != "" {
		name += ": " + query
	}
	id := reg.BeginAt(name, track.Microseconds, start)
	_ = reg.End(id)
}

func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	defer record(db.reg, "exec", query, time.Now())
	return db.wdb.Exec(query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer record(db.reg, "exec", query, time.Now())
	return db.wdb.ExecContext(ctx, query, args...)
}

func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	defer record(db.reg, "query", query, time.Now())
	return db.wdb.Query(query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer record(db.reg, "query", query, time.Now())
	return db.wdb.QueryContext(ctx, query, args...)
}

func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	defer record(db.reg, "query_row", query, time.Now())
	return db.wdb.QueryRow(query, args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer record(db.reg, "query_row", query, time.Now())
	return db.wdb.QueryRowContext(ctx, query, args...)
}

func (db *DB) Ping() error {
	defer record(db.reg, "ping", "", time.Now())
	return db.wdb.Ping()
}

func (db *DB) PingContext(ctx context.Context) error {
	defer record(db.reg, "ping", "", time.Now())
	return db.wdb.PingContext(ctx)
}

func (db *DB) Prepare(query string) (*sql.Stmt, error) {
	defer record(db.reg, "prepare", query, time.Now())
	return db.wdb.Prepare(query)
}

func (db *DB) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	defer record(db.reg, "prepare", query, time.Now())
	return db.wdb.PrepareContext(ctx, query)
}

func (db *DB) Begin() (*Tx, error) {
	defer record(db.reg, "begin", "", time.Now())
	tx, err := db.wdb.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{wtx: tx, reg: db.reg}, nil
}

func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	defer record(db.reg, "begin", "", time.Now())
	tx, err := db.wdb.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{wtx: tx, reg: db.reg}, nil
}

func (db *DB) Close() error {
	defer record(db.reg, "close", "", time.Now())
	return db.wdb.Close()
}

// Tx wraps a *sql.Tx, recording a section per call the same way DB does.
type Tx struct {
	wtx *sql.Tx
	reg *track.Registry
}

// Tx returns the underlying transaction handle.
func (tx *Tx) Tx() *sql.Tx {
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

func (tx *Tx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	defer record(tx.reg, "tx.query", query, time.Now())
	return tx.wtx.Query(query, args...)
}

func (tx *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer record(tx.reg, "tx.query", query, time.Now())
	return tx.wtx.QueryContext(ctx, query, args...)
}

func (tx *Tx) QueryRow(query string, args ...interface{}) *sql.Row {
	defer record(tx.reg, "tx.query_row", query, time.Now())
	return tx.wtx.QueryRow(query, args...)
}

func (tx *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer record(tx.reg, "tx.query_row", query, time.Now())
	return tx.wtx.QueryRowContext(ctx, query, args...)
}

func (tx *Tx) Commit() error {
	defer record(tx.reg, "tx.commit", "", time.Now())
	return tx.wtx.Commit()
}

func (tx *Tx) Rollback() error {
	defer record(tx.reg, "tx.rollback", "", time.Now())
	return tx.wtx.Rollback()
}
