package mapper

import (
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// SubCommunityRows extracts unique sub-communities from staged records,
// keeping the first record per sub-community id.
func SubCommunityRows(records []domain.ExportRecord) []domain.SubCommunityRow {
	seen := make(map[string]struct{})
	var rows []domain.SubCommunityRow
	for _, r := range records {
		if r.SubCommunityID == nil {
			continue
		}
		id := *r.SubCommunityID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, domain.SubCommunityRow{
			ID:          id,
			GeoLocation: r.SubCommunityLocation,
			Name:        r.SubCommunityName,
			Status:      statusOrActive(r.SubCommunityStatus),
			CommunityID: r.CommunityID,
			Domain:      r.SubCommunityDomain,
			Type:        r.SubCommunityType,
		})
	}
	return rows
}

// BuildingRows extracts unique buildings, keeping the first record per
// building id. Open/close and created-on epochs become UTC timestamps.
func BuildingRows(records []domain.ExportRecord) []domain.BuildingRow {
	seen := make(map[string]struct{})
	var rows []domain.BuildingRow
	for _, r := range records {
		if r.BuildingID == nil {
			continue
		}
		id := *r.BuildingID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, domain.BuildingRow{
			ID:             id,
			Name:           r.BuildingName,
			Status:         statusOrActive(r.BuildingStatus),
			GeoLocation:    r.BuildingLocation,
			SiteCode:       r.BuildingSiteCode,
			OpenTime:       EpochToTime(r.BuildingOpenTime),
			CloseTime:      EpochToTime(r.BuildingCloseTime),
			Domain:         r.BuildingDomain,
			Type:           r.BuildingType,
			CreatedBy:      r.BuildingCreatedBy,
			CreatedOn:      EpochToTime(r.BuildingCreatedOn),
			SubCommunityID: r.SubCommunityID,
		})
	}
	return rows
}

// SpaceRows extracts unique spaces. A space without a building id cannot
// satisfy the space→building constraint and is dropped with a warning.
func SpaceRows(records []domain.ExportRecord, logger *zap.Logger) []domain.SpaceRow {
	seen := make(map[string]struct{})
	var rows []domain.SpaceRow
	for _, r := range records {
		if r.SpaceID == nil {
			continue
		}
		id := *r.SpaceID
		if _, ok := seen[id]; ok {
			continue
		}
		if r.BuildingID == nil {
			logger.Warn("Skipping space due to missing building_id", zap.String("space_id", id))
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, domain.SpaceRow{
			ID:              id,
			LayoutHierarchy: intOrZero(r.SpaceLayout),
			Name:            r.SpaceName,
			Status:          statusOrActive(r.SpaceStatus),
			BuildingID:      *r.BuildingID,
			Domain:          r.SpaceDomain,
			Type:            r.SpaceType,
		})
	}
	return rows
}

// AssetRows extracts unique assets keyed by asset name, resolving the asset
// type through the staged lookup table. An unresolved type name is logged
// but the asset is still emitted with a nil type reference.
func AssetRows(records []domain.ExportRecord, assetTypeMap map[string]string, logger *zap.Logger) []domain.AssetRow {
	seen := make(map[string]struct{})
	var rows []domain.AssetRow
	for _, r := range records {
		if r.AssetName == nil {
			continue
		}
		id := *r.AssetName
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		var typeID *string
		typeName := deref(r.AssetType)
		if typeName != "" {
			if resolved, ok := assetTypeMap[typeName]; ok {
				typeID = &resolved
			} else {
				logger.Warn("Asset type not found in lookup table", zap.String("asset_type", typeName))
			}
		}

		rows = append(rows, domain.AssetRow{
			ID:                 id,
			AssetCode:          r.AssetCode,
			CostOfPurchase:     safeFloat(r.CostOfPurchase),
			CreatedBy:          r.CreatedBy,
			CreatedOn:          EpochToTime(r.CreatedOn),
			DisplayName:        r.AssetName,
			Make:               r.AssetMake,
			Model:              r.AssetModel,
			Status:             statusOrActive(r.AssetStatus),
			UpdatedBy:          r.AssetUpdatedBy,
			UpdatedOn:          EpochToTime(r.AssetUpdatedOn),
			AnalyticsProfileID: r.AnalyticsProfileID,
			ClientID:           r.CommunityID,
			Domain:             r.AssetDomain,
			AssetSettingsID:    r.AssetSettingsID,
			BuildingID:         r.BuildingID,
			SubCommunityID:     r.SubCommunityID,
			ActiveContract:     r.ActiveContract,
			TypeID:             typeID,
		})
	}
	return rows
}

// AssetSpaceRows extracts unique (asset, space) pairs.
func AssetSpaceRows(records []domain.ExportRecord) []domain.AssetSpaceRow {
	type pair struct{ asset, space string }
	seen := make(map[pair]struct{})
	var rows []domain.AssetSpaceRow
	for _, r := range records {
		if r.AssetName == nil || r.SpaceID == nil {
			continue
		}
		key := pair{asset: *r.AssetName, space: *r.SpaceID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, domain.AssetSpaceRow{AssetID: key.asset, SpaceID: key.space})
	}
	return rows
}
