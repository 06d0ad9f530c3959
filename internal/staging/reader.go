package staging

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// columnAliases maps historical column names to their canonical keys.
// Older exports carried the asset id under "identifier".
var columnAliases = map[string]string{
	"identifier": "asset_id",
}

// ReadExport loads staged export records from a single file or a glob
// pattern. Matching files are read in natural numeric order so data_2.csv
// sorts before data_10.csv; records keep file order then in-file order.
func ReadExport(pattern string, logger *zap.Logger) ([]domain.ExportRecord, error) {
	paths, err := expandPattern(pattern)
	if err != nil {
		return nil, err
	}

	var records []domain.ExportRecord
	for _, path := range paths {
		fields, err := readNormalized(path)
		if err != nil {
			return nil, err
		}
		for _, m := range fields {
			records = append(records, domain.NewExportRecord(m))
		}
		logger.Info("Loaded staging file", zap.String("file", filepath.Base(path)), zap.Int("records", len(fields)))
	}
	return records, nil
}

// ReadTypes loads the staged type hierarchy file.
func ReadTypes(path string, logger *zap.Logger) ([]domain.TypeRecord, error) {
	fields, err := readNormalized(path)
	if err != nil {
		return nil, err
	}
	records := make([]domain.TypeRecord, 0, len(fields))
	for _, m := range fields {
		records = append(records, domain.NewTypeRecord(m))
	}
	logger.Info("Loaded type staging file", zap.String("file", filepath.Base(path)), zap.Int("records", len(records)))
	return records, nil
}

// expandPattern resolves a path or glob pattern into an ordered file list.
func expandPattern(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		if _, err := os.Stat(pattern); err != nil {
			return nil, fmt.Errorf("staging file not found: %s: %w", pattern, err)
		}
		return []string{pattern}, nil
	}

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid staging pattern %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no staging files match %s: %w", pattern, os.ErrNotExist)
	}
	sort.Slice(paths, func(i, j int) bool {
		return naturalLess(filepath.Base(paths[i]), filepath.Base(paths[j]))
	})
	return paths, nil
}

// readNormalized reads one CSV file into normalized field maps: keys are
// BOM-stripped and de-aliased, values trimmed and de-quoted, empty values nil.
func readNormalized(path string) ([]map[string]*string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	keys := make([]string, len(header))
	for i, h := range header {
		key := strings.TrimPrefix(h, "\uFEFF")
		if canonical, ok := columnAliases[key]; ok {
			key = canonical
		}
		keys[i] = key
	}

	var rows []map[string]*string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		fields := make(map[string]*string, len(keys))
		for i, key := range keys {
			if i >= len(record) {
				fields[key] = nil
				continue
			}
			fields[key] = cleanValue(record[i])
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

// readRaw reads every row of a CSV file, header included, without any
// normalization.
func readRaw(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// cleanValue trims whitespace and surrounding quotes; an empty result is nil.
func cleanValue(v string) *string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `"`)
	v = strings.Trim(v, `'`)
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// naturalLess compares file names so that embedded integers sort by value:
// data_2.csv < data_10.csv.
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		aDigit, bDigit := isDigit(a[0]), isDigit(b[0])
		if aDigit && bDigit {
			aNum, aRest := takeNumber(a)
			bNum, bRest := takeNumber(b)
			if aNum != bNum {
				return aNum < bNum
			}
			a, b = aRest, bRest
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func takeNumber(s string) (int64, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	var n int64
	for _, c := range []byte(s[:i]) {
		n = n*10 + int64(c-'0')
	}
	return n, s[i:]
}
