package pmsqlx_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/pmsqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	odb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { odb.Close() })
	return sqlx.NewDb(odb, "sqlmock"), mock
}

func TestSelectRecordsSection(t *testing.T) {
	xdb, mock := newMockDB(t)
	mock.ExpectQuery("SELECT flavor FROM flavors").
		WillReturnRows(sqlmock.NewRows([]string{"flavor"}).AddRow("rose"))

	reg := track.New()
	db := pmsqlx.WrapDB(reg, xdb)

	var flavors []string
	require.NoError(t, db.SelectContext(context.Background(), &flavors, "SELECT flavor FROM flavors"))
	assert.Equal(t, []string{"rose"}, flavors)

	secs := reg.Sections()
	require.Len(t, secs, 1)
	assert.Equal(t, "sqlx.select: SELECT flavor FROM flavors", secs[0].Name())
	assert.Equal(t, track.Microseconds, secs[0].Resolution())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRecordsSections(t *testing.T) {
	xdb, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("insert into flavors.+").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	reg := track.New()
	db := pmsqlx.WrapDB(reg, xdb)

	tx, err := db.Beginx()
	require.NoError(t, err)
	_, err = tx.Exec("insert into flavors (flavor) values ('violet')")
	assert.NoError(t, err)
	assert.NoError(t, tx.Rollback())

	var names []string
	for _, s := range reg.Sections() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"sqlx.beginx",
		"sqlx.tx.exec: insert into flavors (flavor) values ('violet')",
		"sqlx.tx.rollback",
	}, names)

	assert.NoError(t, mock.ExpectationsWereMet())
}
