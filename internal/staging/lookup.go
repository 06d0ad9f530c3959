package staging

import (
	"os"

	"go.uber.org/zap"
)

// LoadAssetTypeMap reads the asset type lookup artifact and returns a
// template-name to id mapping for asset type resolution. A missing artifact
// is not fatal: the mapper emits assets with a nil type instead.
func LoadAssetTypeMap(path string, logger *zap.Logger) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		logger.Warn("Asset type lookup artifact not found", zap.String("file", path))
		return map[string]string{}, nil
	}

	fields, err := readNormalized(path)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string, len(fields))
	for _, m := range fields {
		name := m["template_name"]
		id := m["id"]
		if name != nil && id != nil {
			mapping[*name] = *id
		}
	}
	logger.Info("Loaded asset type lookup", zap.String("file", path), zap.Int("entries", len(mapping)))
	return mapping, nil
}
