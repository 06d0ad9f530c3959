package staging

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReadManifest loads partition identifiers (one sub-community id per row)
// from a .csv or .xlsx manifest. Only the first column is read; a header row
// naming the column is skipped.
func ReadManifest(path string, logger *zap.Logger) ([]string, error) {
	var ids []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err := readManifestXLSX(path)
		if err != nil {
			return nil, err
		}
		ids = rows
	default:
		rows, err := readNormalizedFirstColumn(path)
		if err != nil {
			return nil, err
		}
		ids = rows
	}

	filtered := ids[:0]
	for _, id := range ids {
		if isManifestHeader(id) {
			continue
		}
		filtered = append(filtered, id)
	}
	logger.Info("Loaded partition manifest", zap.String("file", filepath.Base(path)), zap.Int("partitions", len(filtered)))
	return filtered, nil
}

func readManifestXLSX(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("manifest %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest sheet %s: %w", sheets[0], err)
	}

	var ids []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if v := cleanValue(row[0]); v != nil {
			ids = append(ids, *v)
		}
	}
	return ids, nil
}

func readNormalizedFirstColumn(path string) ([]string, error) {
	fields, err := readNormalized(path)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, m := range fields {
		if v := m["sub_community_id"]; v != nil {
			ids = append(ids, *v)
		}
	}
	if len(ids) > 0 {
		return ids, nil
	}
	// No sub_community_id column: fall back to the first column raw.
	return readFirstColumnRaw(path)
}

func readFirstColumnRaw(path string) ([]string, error) {
	rows, err := readRaw(path)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if v := cleanValue(row[0]); v != nil {
			ids = append(ids, *v)
		}
	}
	return ids, nil
}

func isManifestHeader(v string) bool {
	switch strings.ToLower(strings.TrimPrefix(v, "\uFEFF")) {
	case "sub_community_id", "subcommunity_id", "identifier", "id":
		return true
	}
	return false
}
