package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajithnectar/neo4j-migration-entities/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	require.Equal(t, "neo4j", cfg.Neo4j.Username)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "disable", cfg.Database.SSLMode)
	require.Equal(t, "data", cfg.Export.DataDir)
	require.Equal(t, 1000, cfg.Export.BatchSize)
	require.Equal(t, "ecd", cfg.Export.Domain)
	require.Equal(t, "buildingdemo", cfg.Export.RootClientID)
	require.Equal(t, "name", cfg.Loader.PointDedupKey)
	require.Equal(t, "emaar", cfg.Loader.AssetTypeClientID)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("PG_PORT", "5433")
	t.Setenv("EXPORT_BATCH_SIZE", "250")
	t.Setenv("POINT_DEDUP_KEY", "name_display")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 5433, cfg.Database.Port)
	require.Equal(t, 250, cfg.Export.BatchSize)
	require.Equal(t, "name_display", cfg.Loader.PointDedupKey)
}

func TestLoad_InvalidPointDedupKey(t *testing.T) {
	t.Setenv("POINT_DEDUP_KEY", "identity")

	_, err := config.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "POINT_DEDUP_KEY")
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("EXPORT_BATCH_SIZE", "-5")

	_, err := config.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "EXPORT_BATCH_SIZE")
}

func TestLoad_NonNumericPortFallsBack(t *testing.T) {
	t.Setenv("PG_PORT", "not-a-port")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 5432, cfg.Database.Port)
}

func TestGetDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "secret", Database: "migration", SSLMode: "disable",
	}
	require.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=migration sslmode=disable",
		cfg.GetDSN())
}
