package mapper

import (
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// DataPointRows extracts unique data points keyed by the configured dedup
// key variant, first occurrence wins. Row ids are assigned by the loader so
// that persisted points keep their generated id/point-id pair on rerun.
func DataPointRows(records []domain.ExportRecord, keyVariant string) []domain.DataPointRow {
	seen := make(map[string]struct{})
	var rows []domain.DataPointRow
	for _, r := range records {
		if r.PointName == nil {
			continue
		}
		key := domain.PointDedupKey(keyVariant, *r.PointName, r.PointDisplayName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, domain.DataPointRow{
			AccessType:     r.AccessType,
			DataType:       r.PointDataType,
			DisplayName:    r.PointDisplayName,
			Name:           *r.PointName,
			RemoteDataType: r.RemoteDataType,
			Status:         statusOrActive(r.PointStatus),
			Symbol:         r.PointSymbol,
			Unit:           r.PointUnit,
		})
	}
	return rows
}

// AssetPointLinks extracts unique (asset, point) link rows. pointIDs maps a
// point dedup key to its persisted point id; links whose point never got a
// mapping are dropped with a warning.
func AssetPointLinks(records []domain.ExportRecord, keyVariant string, pointIDs map[string]string, logger *zap.Logger) []domain.PointLinkRow {
	type pair struct{ owner, point string }
	seen := make(map[pair]struct{})
	var rows []domain.PointLinkRow
	for _, r := range records {
		if r.AssetName == nil || r.PointName == nil {
			continue
		}
		pointID, ok := pointIDs[domain.PointDedupKey(keyVariant, *r.PointName, r.PointDisplayName)]
		if !ok {
			logger.Warn("Skipping asset point link without resolvable data point",
				zap.String("asset", *r.AssetName),
				zap.String("point_name", *r.PointName),
			)
			continue
		}
		key := pair{owner: *r.AssetName, point: pointID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, domain.PointLinkRow{
			Expression: r.PointExpression,
			Precedence: safeInt(r.PointPrecedence),
			Status:     statusOrActive(r.PointStatus),
			Symbol:     r.PointSymbol,
			Unit:       r.PointUnit,
			PointID:    pointID,
			OwnerID:    *r.AssetName,
		})
	}
	return rows
}

// AssetTypePointLinks extracts unique (asset type, point) link rows. The
// owner is resolved through the asset type lookup table; links with an
// unresolved owner or point are dropped with a warning.
func AssetTypePointLinks(records []domain.ExportRecord, keyVariant string, pointIDs map[string]string, assetTypeMap map[string]string, logger *zap.Logger) []domain.PointLinkRow {
	type pair struct{ owner, point string }
	seen := make(map[pair]struct{})
	var rows []domain.PointLinkRow
	for _, r := range records {
		if r.AssetType == nil || r.PointName == nil {
			continue
		}
		ownerID, ok := assetTypeMap[*r.AssetType]
		if !ok {
			logger.Warn("Skipping asset type point link without resolvable asset type",
				zap.String("asset_type", *r.AssetType),
				zap.String("point_name", *r.PointName),
			)
			continue
		}
		pointID, ok := pointIDs[domain.PointDedupKey(keyVariant, *r.PointName, r.PointDisplayName)]
		if !ok {
			logger.Warn("Skipping asset type point link without resolvable data point",
				zap.String("asset_type", *r.AssetType),
				zap.String("point_name", *r.PointName),
			)
			continue
		}
		key := pair{owner: ownerID, point: pointID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, domain.PointLinkRow{
			Expression: r.PointExpression,
			Precedence: safeInt(r.PointPrecedence),
			Status:     statusOrActive(r.PointStatus),
			Symbol:     r.PointSymbol,
			Unit:       r.PointUnit,
			PointID:    pointID,
			OwnerID:    ownerID,
		})
	}
	return rows
}
