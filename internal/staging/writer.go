package staging

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Writer persists query result windows as numbered CSV staging files.
type Writer struct {
	dataDir string
	logger  *zap.Logger
}

// NewWriter creates a staging writer rooted at dataDir, creating the
// directory when absent.
func NewWriter(dataDir string, logger *zap.Logger) (*Writer, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory %s: %w", dataDir, err)
	}
	return &Writer{dataDir: dataDir, logger: logger}, nil
}

// DataDir returns the staging directory.
func (w *Writer) DataDir() string {
	return w.dataDir
}

// WriteWindow writes one export window as data_<fileNum>.csv and returns the
// file path. Each window file is independent of the others so a restart
// between windows never corrupts earlier files.
func (w *Writer) WriteWindow(fileNum int, records []map[string]any) (string, error) {
	name := fmt.Sprintf("data_%d.csv", fileNum)
	path := filepath.Join(w.dataDir, name)
	if err := WriteTable(path, ExportColumns, records); err != nil {
		return "", err
	}
	w.logger.Info("Saved staging file",
		zap.String("file", name),
		zap.Int("records", len(records)),
	)
	return path, nil
}

// WriteTable writes records as a CSV file with the given column order. Only
// listed columns are written; missing values become empty cells.
func WriteTable(path string, columns []string, records []map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, col := range columns {
			row[i] = formatValue(record[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		return value.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", value)
	}
}
