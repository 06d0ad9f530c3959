package export_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/export"
	"github.com/ajithnectar/neo4j-migration-entities/internal/staging"
)

// fakeGraph serves a canned record set through SKIP/LIMIT paging. A partition
// listed in failing errors on every query.
type fakeGraph struct {
	records []map[string]any
	failing map[string]bool
}

func (f *fakeGraph) partitionOf(params map[string]any) string {
	if id, ok := params["subCommunityID"].(string); ok {
		return id
	}
	return ""
}

func (f *fakeGraph) Count(_ context.Context, _ string, params map[string]any, _ string) (int64, error) {
	if f.failing[f.partitionOf(params)] {
		return 0, errors.New("connection reset")
	}
	return int64(len(f.records)), nil
}

func (f *fakeGraph) Collect(_ context.Context, _ string, params map[string]any) ([]map[string]any, error) {
	if f.failing[f.partitionOf(params)] {
		return nil, errors.New("connection reset")
	}
	skip, _ := params["skip"].(int)
	limit, _ := params["limit"].(int)
	if limit == 0 {
		return f.records, nil
	}
	if skip >= len(f.records) {
		return nil, nil
	}
	end := skip + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[skip:end], nil
}

func sampleRecords(n int) []map[string]any {
	records := make([]map[string]any, n)
	for i := range records {
		records[i] = map[string]any{
			"asset_name": "Asset " + string(rune('A'+i)),
			"point_name": "temperature",
		}
	}
	return records
}

func newWriter(t *testing.T) (*staging.Writer, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := staging.NewWriter(dir, zap.NewNop())
	require.NoError(t, err)
	return w, dir
}

func TestRun_SplitsIntoWindows(t *testing.T) {
	writer, dir := newWriter(t)
	g := &fakeGraph{records: sampleRecords(5)}
	e := export.NewExporter(g, writer, 2, "ecd", zap.NewNop())

	summary, err := e.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 5, summary.TotalExported)
	require.Equal(t, 3, summary.FilesCreated)

	for _, name := range []string{"data_1.csv", "data_2.csv", "data_3.csv"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, name)
	}
}

func TestRun_EmptyDomainWritesNothing(t *testing.T) {
	writer, dir := newWriter(t)
	g := &fakeGraph{}
	e := export.NewExporter(g, writer, 2, "ecd", zap.NewNop())

	summary, err := e.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, summary.TotalExported)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRun_FailedPartitionDoesNotStopOthers(t *testing.T) {
	writer, dir := newWriter(t)
	g := &fakeGraph{
		records: sampleRecords(2),
		failing: map[string]bool{"SC-BAD": true},
	}
	e := export.NewExporter(g, writer, 10, "ecd", zap.NewNop())

	summary, err := e.Run(context.Background(), []string{"SC-1", "SC-BAD", "SC-2"})
	require.NoError(t, err)
	require.Equal(t, 1, summary.PartitionsFailed)
	require.Equal(t, 4, summary.TotalExported)
	require.Equal(t, 2, summary.FilesCreated)

	// File numbering stays global across partitions.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	require.ElementsMatch(t, []string{"data_1.csv", "data_2.csv"}, names)
}

func TestRun_PartitionRecordsLandInFiles(t *testing.T) {
	writer, dir := newWriter(t)
	g := &fakeGraph{records: sampleRecords(1)}
	e := export.NewExporter(g, writer, 10, "ecd", zap.NewNop())

	_, err := e.Run(context.Background(), []string{"SC-1"})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "data_1.csv"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(content), "Asset A"))
}

func TestExportAssetTypes_WritesStagingFile(t *testing.T) {
	writer, dir := newWriter(t)
	g := &fakeGraph{records: []map[string]any{
		{"parent_name": "HVAC", "child_name": "Chiller", "child_template_name": "chiller_tmpl"},
	}}
	e := export.NewExporter(g, writer, 10, "ecd", zap.NewNop())

	path := filepath.Join(dir, "AssetTypeToMigrate.csv")
	count, err := e.ExportAssetTypes(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "Chiller")
}
