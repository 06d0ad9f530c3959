package staging_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/staging"
)

func TestReadManifest_CSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "subcommunities.csv",
		"sub_community_id\nSC-001\nSC-002\n\n")

	ids, err := staging.ReadManifest(path, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{"SC-001", "SC-002"}, ids)
}

func TestReadManifest_CSVWithoutHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "subcommunities.csv", "SC-001\nSC-002\n")

	ids, err := staging.ReadManifest(path, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{"SC-001", "SC-002"}, ids)
}

func TestReadManifest_XLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subcommunities.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "sub_community_id"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "SC-001"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "SC-002"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ids, err := staging.ReadManifest(path, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{"SC-001", "SC-002"}, ids)
}

func TestReadManifest_MissingFile(t *testing.T) {
	_, err := staging.ReadManifest(filepath.Join(t.TempDir(), "missing.csv"), zap.NewNop())
	require.Error(t, err)
}
