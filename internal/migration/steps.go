package migration

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/ajithnectar/neo4j-migration-entities/internal/database"
	"github.com/ajithnectar/neo4j-migration-entities/internal/export"
	"github.com/ajithnectar/neo4j-migration-entities/internal/loader"
	"github.com/ajithnectar/neo4j-migration-entities/internal/mapper"
	"github.com/ajithnectar/neo4j-migration-entities/internal/resolver"
	"github.com/ajithnectar/neo4j-migration-entities/internal/staging"
)

// Staging artifact names. The type hierarchy files live in the working
// directory; export windows live under the configured data directory.
const (
	typeCSV        = "typeToMigrate.csv"
	assetTypeCSV   = "AssetTypeToMigrate.csv"
	assetTypeSnap  = "assetType.csv"
	exportFileGlob = "data_*.csv"
)

// Steps returns the ordered step registry. The order matches the full
// migration sequence: reference data first, then the export, then the
// dependency-ordered entity loads.
func Steps() []Step {
	return []Step{
		{Key: "type", Name: "Type migration", Run: runTypeMigration},
		{Key: "asset-type", Name: "Asset type migration", Run: runAssetTypeMigration},
		{Key: "fetch-asset-types", Name: "Fetch asset types", Run: runFetchAssetTypes},
		{Key: "export", Name: "Neo4j to CSV export", Run: runExport},
		{Key: "client", Name: "Client migration", Run: runClientMigration},
		{Key: "community", Name: "Community migration", Run: runCommunityMigration},
		{Key: "domain", Name: "Domain migration", Run: runDomainMigration},
		{Key: "staged", Name: "Staged entity migration", Run: runStagedMigration},
	}
}

// StepByKey resolves a step by its CLI key. "neo4j-export" is a historical
// alias for "export"; "step" for "staged".
func StepByKey(key string) (Step, bool) {
	switch key {
	case "neo4j-export":
		key = "export"
	case "step":
		key = "staged"
	}
	for _, step := range Steps() {
		if step.Key == key {
			return step, true
		}
	}
	return Step{}, false
}

func runTypeMigration(ctx context.Context, deps *Deps) (string, error) {
	records, err := staging.ReadTypes(typeCSV, deps.Logger)
	if err != nil {
		return "", err
	}
	rows := mapper.TypeRows(records, deps.Logger)
	if len(rows) == 0 {
		return "No types to migrate", nil
	}
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		return loader.New(tx, deps.Logger).UpsertTypes(ctx, rows)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Migrated %d types", len(rows)), nil
}

func runAssetTypeMigration(ctx context.Context, deps *Deps) (string, error) {
	// Stage the hierarchy from the graph when the artifact is absent.
	if _, err := os.Stat(assetTypeCSV); err != nil {
		deps.Logger.Info("Asset type staging file not found, exporting from Neo4j")
		exporter := newExporter(deps, nil)
		if _, err := exporter.ExportAssetTypes(ctx, assetTypeCSV); err != nil {
			return "", err
		}
	}

	records, err := staging.ReadTypes(assetTypeCSV, deps.Logger)
	if err != nil {
		return "", err
	}

	var count int
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		startID, err := loader.NextAssetTypeID(ctx, tx)
		if err != nil {
			return err
		}
		rows := mapper.AssetTypeRows(records, startID, deps.Config.Loader.AssetTypeClientID, deps.Logger)
		count = len(rows)
		if count == 0 {
			return nil
		}
		return loader.New(tx, deps.Logger).UpsertAssetTypes(ctx, rows)
	})
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "No asset types to migrate", nil
	}
	return fmt.Sprintf("Migrated %d asset types", count), nil
}

func runFetchAssetTypes(ctx context.Context, deps *Deps) (string, error) {
	assetTypes, err := loader.FetchAssetTypes(ctx, deps.DB)
	if err != nil {
		return "", err
	}
	if len(assetTypes) == 0 {
		return "No asset types found in database", nil
	}
	if err := staging.WriteTable(assetTypeSnap, loader.AssetTypeColumns, assetTypes); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved %d asset types to %s", len(assetTypes), assetTypeSnap), nil
}

func runExport(ctx context.Context, deps *Deps) (string, error) {
	writer, err := staging.NewWriter(deps.Config.Export.DataDir, deps.Logger)
	if err != nil {
		return "", err
	}
	exporter := newExporter(deps, writer)

	var partitions []string
	if path := deps.Config.Export.ManifestPath; path != "" {
		partitions, err = staging.ReadManifest(path, deps.Logger)
		if err != nil {
			return "", err
		}
	}

	summary, err := exporter.Run(ctx, partitions)
	if err != nil {
		return "", err
	}
	line := fmt.Sprintf("Exported %d records into %d files under %s",
		summary.TotalExported, summary.FilesCreated, deps.Config.Export.DataDir)
	if summary.PartitionsFailed > 0 {
		line += fmt.Sprintf(" (%d partitions failed)", summary.PartitionsFailed)
	}
	return line, nil
}

func runClientMigration(ctx context.Context, deps *Deps) (string, error) {
	records, err := newExporter(deps, nil).FetchClients(ctx, deps.Config.Export.RootClientID)
	if err != nil {
		return "", err
	}
	rows := mapper.ClientRows(records, deps.Logger)
	if len(rows) == 0 {
		return "No clients found to migrate", nil
	}
	ordered := resolver.OrderClients(rows, deps.Logger)
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		return loader.New(tx, deps.Logger).UpsertClients(ctx, ordered)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Migrated %d clients", len(ordered)), nil
}

func runCommunityMigration(ctx context.Context, deps *Deps) (string, error) {
	records, err := newExporter(deps, nil).FetchCommunities(ctx)
	if err != nil {
		return "", err
	}
	rows := mapper.CommunityRows(records, deps.Logger)
	if len(rows) == 0 {
		return "No communities found to migrate", nil
	}
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		return loader.New(tx, deps.Logger).UpsertCommunities(ctx, rows)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Migrated %d communities", len(rows)), nil
}

func runDomainMigration(ctx context.Context, deps *Deps) (string, error) {
	records, err := newExporter(deps, nil).FetchDomains(ctx)
	if err != nil {
		return "", err
	}
	rows := mapper.DomainRows(records)
	if len(rows) == 0 {
		return "No domains found to migrate", nil
	}
	err = database.WithTx(ctx, deps.DB, func(tx *sql.Tx) error {
		return loader.New(tx, deps.Logger).UpsertDomains(ctx, rows)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Migrated %d domains", len(rows)), nil
}

func newExporter(deps *Deps, writer *staging.Writer) *export.Exporter {
	return export.NewExporter(
		deps.Graph,
		writer,
		deps.Config.Export.BatchSize,
		deps.Config.Export.Domain,
		deps.Logger,
	)
}
