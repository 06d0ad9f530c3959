package loader_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
	"github.com/ajithnectar/neo4j-migration-entities/internal/loader"
)

func TestUpsertClients_OneExecPerRow(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	prep := mock.ExpectPrepare(`INSERT INTO public\.clients`)
	prep.ExpectExec().
		WithArgs("root", "Root Client", nil, nil, 0, "ACTIVE", "RO", "COMMUNITY",
			nil, "ecd", nil, int64(1700000000000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("child", nil, nil, nil, 0, "ACTIVE", nil, "COMMUNITY",
			"root", "ecd", nil, int64(1700000000001)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := []domain.ClientRow{
		{
			ClientID:     "root",
			ClientName:   strPtr("Root Client"),
			Status:       "ACTIVE",
			TicketPrefix: strPtr("RO"),
			Type:         "COMMUNITY",
			Domain:       strPtr("ecd"),
			CreatedOn:    1700000000000,
		},
		{
			ClientID:  "child",
			Status:    "ACTIVE",
			Type:      "COMMUNITY",
			Colony:    strPtr("root"),
			Domain:    strPtr("ecd"),
			CreatedOn: 1700000000001,
		},
	}

	require.NoError(t, l.UpsertClients(context.Background(), rows))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertClients_EmptyBatchDoesNothing(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	require.NoError(t, l.UpsertClients(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAssetTypes_ConflictsOnName(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	prep := mock.ExpectPrepare(`INSERT INTO public\.asset_type(?s).*ON CONFLICT \(name\)`)
	prep.ExpectExec().
		WithArgs(int64(42), "Chiller", "HVAC", "ACTIVE", nil, "emaar").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := []domain.AssetTypeRow{
		{ID: 42, Name: "Chiller", ParentName: strPtr("HVAC"), Status: "ACTIVE", ClientID: "emaar"},
	}

	require.NoError(t, l.UpsertAssetTypes(context.Background(), rows))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNextAssetTypeID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(id\), 0\) FROM public\.asset_type`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(41))

	next, err := loader.NextAssetTypeID(context.Background(), tx)
	require.NoError(t, err)
	require.Equal(t, int64(42), next)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchAssetTypes_OptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, parent_name, status, template_name, client_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "parent_name", "status", "template_name", "client_id"}).
			AddRow(1, "Chiller", "HVAC", "ACTIVE", "chiller_tmpl", "emaar").
			AddRow(2, "Pump", nil, "ACTIVE", nil, "emaar"))

	result, err := loader.FetchAssetTypes(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, "HVAC", result[0]["parent_name"])
	require.NotContains(t, result[1], "parent_name")
	require.NotContains(t, result[1], "template_name")
	require.NoError(t, mock.ExpectationsWereMet())
}
