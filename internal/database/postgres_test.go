package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/ajithnectar/neo4j-migration-entities/internal/database"
)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE things`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = database.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(context.Background(), "UPDATE things SET x = 1")
		return execErr
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = database.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecBatch_PreparesOnceExecutesPerRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	prep := mock.ExpectPrepare(`INSERT INTO things`)
	prep.ExpectExec().WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("b").WillReturnResult(sqlmock.NewResult(0, 1))

	rows := [][]any{{"a"}, {"b"}}
	require.NoError(t, database.ExecBatch(context.Background(), tx, "INSERT INTO things (name) VALUES ($1)", rows))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecBatch_EmptyRowsSkipsPrepare(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, database.ExecBatch(context.Background(), tx, "INSERT INTO things (name) VALUES ($1)", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecBatch_ReportsFailingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	prep := mock.ExpectPrepare(`INSERT INTO things`)
	prep.ExpectExec().WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("b").WillReturnError(errors.New("duplicate key"))

	rows := [][]any{{"a"}, {"b"}}
	err = database.ExecBatch(context.Background(), tx, "INSERT INTO things (name) VALUES ($1)", rows)
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 1")
	require.NoError(t, mock.ExpectationsWereMet())
}
