// Package export pages the graph export query in bounded windows and
// persists each window as an independent staging file.
package export

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/staging"
)

// GraphSource is the graph read surface the exporter needs.
type GraphSource interface {
	Collect(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
	Count(ctx context.Context, query string, params map[string]any, alias string) (int64, error)
}

// Exporter extracts the domain export in SKIP/LIMIT windows.
type Exporter struct {
	graph     GraphSource
	writer    *staging.Writer
	logger    *zap.Logger
	batchSize int
	domain    string
}

// Summary reports what one export run produced.
type Summary struct {
	TotalExported    int
	FilesCreated     int
	PartitionsFailed int
}

// NewExporter creates an exporter writing staging files through writer.
func NewExporter(g GraphSource, writer *staging.Writer, batchSize int, domain string, logger *zap.Logger) *Exporter {
	return &Exporter{
		graph:     g,
		writer:    writer,
		logger:    logger,
		batchSize: batchSize,
		domain:    domain,
	}
}

// Run exports every partition. With no partitions the whole domain is one
// partition and a window failure is fatal; with a manifest, a failing
// partition is logged and skipped while the rest continue. The staging file
// counter advances globally across partitions so file names never collide.
func (e *Exporter) Run(ctx context.Context, partitions []string) (Summary, error) {
	var summary Summary

	if len(partitions) == 0 {
		fileNum, exported, err := e.exportPartition(ctx, nil, 1)
		if err != nil {
			return summary, err
		}
		summary.TotalExported = exported
		summary.FilesCreated = fileNum - 1
		return summary, nil
	}

	fileNum := 1
	for _, partition := range partitions {
		p := partition
		nextFileNum, exported, err := e.exportPartition(ctx, &p, fileNum)
		if err != nil {
			e.logger.Error("Partition export failed, continuing with next partition",
				zap.String("sub_community_id", p),
				zap.Error(err),
			)
			summary.PartitionsFailed++
			fileNum = nextFileNum
			continue
		}
		summary.TotalExported += exported
		summary.FilesCreated += nextFileNum - fileNum
		fileNum = nextFileNum
	}
	return summary, nil
}

// exportPartition exports one partition's windows starting at fileNum and
// returns the next free file number, even on failure, so later partitions
// never reuse a number.
func (e *Exporter) exportPartition(ctx context.Context, subCommunityID *string, fileNum int) (int, int, error) {
	filter := ""
	params := map[string]any{"domain": e.domain}
	logFields := []zap.Field{zap.String("domain", e.domain)}
	if subCommunityID != nil {
		filter = partitionFilter
		params["subCommunityID"] = *subCommunityID
		logFields = append(logFields, zap.String("sub_community_id", *subCommunityID))
	}

	total, err := e.graph.Count(ctx, fmt.Sprintf(countQuery, filter), params, "total_count")
	if err != nil {
		return fileNum, 0, fmt.Errorf("count query failed: %w", err)
	}
	if total == 0 {
		e.logger.Warn("No records found to export", logFields...)
		return fileNum, 0, nil
	}

	numWindows := int((total + int64(e.batchSize) - 1) / int64(e.batchSize))
	e.logger.Info("Starting export",
		append(logFields,
			zap.Int64("total_records", total),
			zap.Int("windows", numWindows),
			zap.Int("batch_size", e.batchSize),
		)...,
	)

	exported := 0
	for window := 0; window < numWindows; window++ {
		skip := window * e.batchSize
		windowParams := map[string]any{"skip": skip, "limit": e.batchSize}
		for k, v := range params {
			windowParams[k] = v
		}

		records, err := e.graph.Collect(ctx, fmt.Sprintf(dataQuery, filter), windowParams)
		if err != nil {
			// A torn window would leave a silently truncated export, so the
			// partition aborts here; files written for prior windows remain.
			return fileNum, exported, fmt.Errorf("window %d/%d (skip=%d) failed: %w", window+1, numWindows, skip, err)
		}
		if len(records) == 0 {
			e.logger.Warn("No records returned for window", zap.Int("window", window+1))
			break
		}

		if _, err := e.writer.WriteWindow(fileNum, records); err != nil {
			return fileNum, exported, fmt.Errorf("window %d/%d write failed: %w", window+1, numWindows, err)
		}
		fileNum++
		exported += len(records)
		e.logger.Info("Exported window",
			zap.Int("window", window+1),
			zap.Int("windows", numWindows),
			zap.Int("records", len(records)),
		)
	}

	return fileNum, exported, nil
}

// ExportAssetTypes stages the template hierarchy as the asset type staging
// file.
func (e *Exporter) ExportAssetTypes(ctx context.Context, path string) (int, error) {
	records, err := e.graph.Collect(ctx, assetTypeQuery, nil)
	if err != nil {
		return 0, fmt.Errorf("asset type export query failed: %w", err)
	}
	if len(records) == 0 {
		e.logger.Warn("No asset type data found in Neo4j")
		return 0, nil
	}
	if err := staging.WriteTable(path, staging.AssetTypeExportColumns, records); err != nil {
		return 0, err
	}
	e.logger.Info("Exported asset types", zap.String("file", path), zap.Int("records", len(records)))
	return len(records), nil
}

// FetchClients fetches the root tenant and its children for the client
// migration.
func (e *Exporter) FetchClients(ctx context.Context, rootClientID string) ([]map[string]any, error) {
	return e.graph.Collect(ctx, clientQuery, map[string]any{"rootClientID": rootClientID})
}

// FetchCommunities fetches community nodes for the configured domain.
func (e *Exporter) FetchCommunities(ctx context.Context) ([]map[string]any, error) {
	return e.graph.Collect(ctx, communityQuery, map[string]any{"domain": e.domain})
}

// FetchDomains fetches tenant domain nodes.
func (e *Exporter) FetchDomains(ctx context.Context) ([]map[string]any, error) {
	return e.graph.Collect(ctx, domainQuery, nil)
}
