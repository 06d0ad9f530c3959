package mapper

import (
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// TypeRows maps staged type hierarchy records to type rows. Name is
// required and unique; later duplicates are dropped.
func TypeRows(records []domain.TypeRecord, logger *zap.Logger) []domain.TypeRow {
	seen := make(map[string]struct{})
	skipped := 0
	var rows []domain.TypeRow
	for _, r := range records {
		if r.ChildName == nil {
			logger.Warn("Skipping type record with missing child_name")
			skipped++
			continue
		}
		name := *r.ChildName
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		rows = append(rows, domain.TypeRow{
			Name:         name,
			ParentName:   r.ParentName,
			Status:       "ACTIVE",
			TemplateName: r.ChildTemplateName,
		})
	}
	if skipped > 0 {
		logger.Warn("Skipped invalid type records during mapping", zap.Int("count", skipped))
	}
	return rows
}

// AssetTypeRows maps staged type hierarchy records to asset type rows,
// assigning sequential ids from startID.
func AssetTypeRows(records []domain.TypeRecord, startID int64, clientID string, logger *zap.Logger) []domain.AssetTypeRow {
	seen := make(map[string]struct{})
	skipped := 0
	currentID := startID
	var rows []domain.AssetTypeRow
	for _, r := range records {
		if r.ChildName == nil {
			logger.Warn("Skipping asset type record with missing child_name")
			skipped++
			continue
		}
		name := *r.ChildName
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		rows = append(rows, domain.AssetTypeRow{
			ID:           currentID,
			Name:         name,
			ParentName:   r.ParentName,
			Status:       "ACTIVE",
			TemplateName: r.ChildTemplateName,
			ClientID:     clientID,
		})
		currentID++
	}
	if skipped > 0 {
		logger.Warn("Skipped invalid asset type records during mapping", zap.Int("count", skipped))
	}
	return rows
}
