package migration

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/database"
	"github.com/ajithnectar/neo4j-migration-entities/internal/loader"
	"github.com/ajithnectar/neo4j-migration-entities/internal/mapper"
	"github.com/ajithnectar/neo4j-migration-entities/internal/staging"
	"github.com/ajithnectar/neo4j-migration-entities/internal/validator"
)

// runStagedMigration loads the staged export through the full entity chain:
// sub-communities, buildings, spaces, assets with their space links, then
// data points with their link tables. Each entity type commits in its own
// transaction, so a failure never rolls back an earlier entity type.
func runStagedMigration(ctx context.Context, deps *Deps) (string, error) {
	pattern := filepath.Join(deps.Config.Export.DataDir, exportFileGlob)
	records, err := staging.ReadExport(pattern, deps.Logger)
	if err != nil {
		return "", err
	}
	deps.Logger.Info("Loaded staged export", zap.Int("records", len(records)))

	ref := validator.NewReferential(deps.DB, deps.Logger)
	var summary []string

	// Sub-communities: community reference must resolve to a persisted
	// client; unresolvable rows are dropped, not fatal.
	subs, err := ref.FilterSubCommunities(ctx, mapper.SubCommunityRows(records))
	if err != nil {
		return "", err
	}
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		return loader.New(tx, deps.Logger).UpsertSubCommunities(ctx, subs)
	})
	if err != nil {
		return "", fmt.Errorf("sub-community load failed: %w", err)
	}
	summary = append(summary, fmt.Sprintf("%d sub-communities", len(subs)))

	buildings := mapper.BuildingRows(records)
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		return loader.New(tx, deps.Logger).UpsertBuildings(ctx, buildings)
	})
	if err != nil {
		return "", fmt.Errorf("building load failed: %w", err)
	}
	summary = append(summary, fmt.Sprintf("%d buildings", len(buildings)))

	spaces := mapper.SpaceRows(records, deps.Logger)
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		return loader.New(tx, deps.Logger).UpsertSpaces(ctx, spaces)
	})
	if err != nil {
		return "", fmt.Errorf("space load failed: %w", err)
	}
	summary = append(summary, fmt.Sprintf("%d spaces", len(spaces)))

	// Assets and their space links. The asset type lookup comes from the
	// staged snapshot; space links are filtered against the now-committed
	// space table.
	assetTypeMap, err := staging.LoadAssetTypeMap(assetTypeSnap, deps.Logger)
	if err != nil {
		return "", err
	}
	assets := mapper.AssetRows(records, assetTypeMap, deps.Logger)
	assetSpaces, err := ref.FilterAssetSpaces(ctx, mapper.AssetSpaceRows(records))
	if err != nil {
		return "", err
	}
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		l := loader.New(tx, deps.Logger)
		if err := l.UpsertAssets(ctx, assets); err != nil {
			return err
		}
		return l.InsertAssetSpaces(ctx, assetSpaces)
	})
	if err != nil {
		return "", fmt.Errorf("asset load failed: %w", err)
	}
	summary = append(summary, fmt.Sprintf("%d assets", len(assets)), fmt.Sprintf("%d asset-space links", len(assetSpaces)))

	// Data points and link tables share one transaction: the generated
	// point id map produced by the point load feeds the link mapping.
	keyVariant := deps.Config.Loader.PointDedupKey
	points := mapper.DataPointRows(records, keyVariant)
	var assetLinks, assetTypeLinks int
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		l := loader.New(tx, deps.Logger)
		pointIDs, err := l.LoadDataPoints(ctx, points, keyVariant)
		if err != nil {
			return err
		}
		assetLinks, err = l.InsertAssetPointLinks(ctx, mapper.AssetPointLinks(records, keyVariant, pointIDs, deps.Logger))
		if err != nil {
			return err
		}
		assetTypeLinks, err = l.InsertAssetTypePointLinks(ctx, mapper.AssetTypePointLinks(records, keyVariant, pointIDs, assetTypeMap, deps.Logger))
		return err
	})
	if err != nil {
		return "", fmt.Errorf("data point load failed: %w", err)
	}
	summary = append(summary,
		fmt.Sprintf("%d data points", len(points)),
		fmt.Sprintf("%d asset-point links", assetLinks),
		fmt.Sprintf("%d asset-type-point links", assetTypeLinks),
	)

	return "Migrated " + strings.Join(summary, ", "), nil
}
