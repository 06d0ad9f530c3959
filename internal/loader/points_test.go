package loader_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
	"github.com/ajithnectar/neo4j-migration-entities/internal/loader"
)

func strPtr(s string) *string { return &s }

func beginTx(t *testing.T) (*loader.Loader, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)
	return loader.New(tx, zap.NewNop()), mock, func() { db.Close() }
}

func TestLoadDataPoints_ReusesPersistedIDs(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	mock.ExpectQuery(`SELECT point_id, point_name, display_name FROM public\.data_points WHERE point_name = ANY\(\$1\)`).
		WithArgs(pq.Array([]string{"temperature", "pressure"})).
		WillReturnRows(sqlmock.NewRows([]string{"point_id", "point_name", "display_name"}).
			AddRow("existing-id", "temperature", "Supply Temp"))

	prep := mock.ExpectPrepare(`INSERT INTO public\.data_points`)
	prep.ExpectExec().
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, nil, nil, "pressure", nil, "ACTIVE", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := []domain.DataPointRow{
		{Name: "temperature", DisplayName: strPtr("Supply Temp"), Status: "ACTIVE"},
		{Name: "pressure", Status: "ACTIVE"},
	}

	pointIDs, err := l.LoadDataPoints(context.Background(), rows, domain.PointKeyName)
	require.NoError(t, err)
	require.Len(t, pointIDs, 2)
	require.Equal(t, "existing-id", pointIDs["temperature"])
	require.NotEmpty(t, pointIDs["pressure"])
	require.NotEqual(t, "existing-id", pointIDs["pressure"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDataPoints_AllExistingSkipsInsert(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	mock.ExpectQuery(`SELECT point_id, point_name, display_name FROM public\.data_points`).
		WillReturnRows(sqlmock.NewRows([]string{"point_id", "point_name", "display_name"}).
			AddRow("id-1", "temperature", nil))

	rows := []domain.DataPointRow{{Name: "temperature", Status: "ACTIVE"}}

	pointIDs, err := l.LoadDataPoints(context.Background(), rows, domain.PointKeyName)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"temperature": "id-1"}, pointIDs)
	// No prepare expected: nothing to insert.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDataPoints_EmptyBatch(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	pointIDs, err := l.LoadDataPoints(context.Background(), nil, domain.PointKeyName)
	require.NoError(t, err)
	require.Empty(t, pointIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssetPointLinks_SkipsExistingPairs(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	mock.ExpectQuery(`SELECT asset_id, point_id FROM public\.asset_points WHERE asset_id = ANY\(\$1\)`).
		WithArgs(pq.Array([]string{"Chiller 1"})).
		WillReturnRows(sqlmock.NewRows([]string{"asset_id", "point_id"}).
			AddRow("Chiller 1", "pid-1"))

	prep := mock.ExpectPrepare(`INSERT INTO public\.asset_points`)
	prep.ExpectExec().
		WithArgs(sqlmock.AnyArg(), nil, nil, "ACTIVE", nil, nil, "pid-2", "Chiller 1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := []domain.PointLinkRow{
		{OwnerID: "Chiller 1", PointID: "pid-1", Status: "ACTIVE"},
		{OwnerID: "Chiller 1", PointID: "pid-2", Status: "ACTIVE"},
	}

	inserted, err := l.InsertAssetPointLinks(context.Background(), rows)
	require.NoError(t, err)
	require.Equal(t, 1, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssetTypePointLinks_UsesTypeOwnerColumn(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	mock.ExpectQuery(`SELECT asset_type_id, point_id FROM public\.asset_type_points WHERE asset_type_id = ANY\(\$1\)`).
		WithArgs(pq.Array([]string{"7"})).
		WillReturnRows(sqlmock.NewRows([]string{"asset_type_id", "point_id"}))

	prep := mock.ExpectPrepare(`INSERT INTO public\.asset_type_points`)
	prep.ExpectExec().
		WithArgs(sqlmock.AnyArg(), nil, nil, "ACTIVE", nil, nil, "pid-1", "7").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := []domain.PointLinkRow{{OwnerID: "7", PointID: "pid-1", Status: "ACTIVE"}}

	inserted, err := l.InsertAssetTypePointLinks(context.Background(), rows)
	require.NoError(t, err)
	require.Equal(t, 1, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssetPointLinks_EmptyBatch(t *testing.T) {
	l, mock, done := beginTx(t)
	defer done()

	inserted, err := l.InsertAssetPointLinks(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}
