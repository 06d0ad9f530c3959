package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/database"
	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

const insertDataPointSQL = `
	INSERT INTO public.data_points (
		id, point_id, access_type, data_type, display_name,
		point_name, remote_data_type, status, symbol, unit
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

// LoadDataPoints inserts data points that are not yet persisted and returns
// a map from dedup key to point id covering the whole batch. A point already
// present under its dedup key keeps its stored id/point-id pair, so reruns
// reuse the existing row instead of inserting a duplicate. The existence
// check is one set-membership query for the batch, not a per-row round trip.
func (l *Loader) LoadDataPoints(ctx context.Context, rows []domain.DataPointRow, keyVariant string) (map[string]string, error) {
	if len(rows) == 0 {
		return map[string]string{}, nil
	}

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	existing, err := l.existingPoints(ctx, names, keyVariant)
	if err != nil {
		return nil, err
	}

	pointIDs := make(map[string]string, len(rows))
	var inserts [][]any
	reused := 0
	for i := range rows {
		key := domain.PointDedupKey(keyVariant, rows[i].Name, rows[i].DisplayName)
		if id, ok := existing[key]; ok {
			pointIDs[key] = id
			reused++
			continue
		}
		id := uuid.New().String()
		rows[i].ID = id
		rows[i].PointID = id
		pointIDs[key] = id
		inserts = append(inserts, []any{
			rows[i].ID, rows[i].PointID, rows[i].AccessType, rows[i].DataType, rows[i].DisplayName,
			rows[i].Name, rows[i].RemoteDataType, rows[i].Status, rows[i].Symbol, rows[i].Unit,
		})
	}

	if err := database.ExecBatch(ctx, l.tx, insertDataPointSQL, inserts); err != nil {
		return nil, err
	}
	l.logger.Info("Loaded data points",
		zap.Int("inserted", len(inserts)),
		zap.Int("reused", reused),
	)
	return pointIDs, nil
}

// existingPoints fetches already-persisted points matching the batch's names
// and indexes them by the configured dedup key.
func (l *Loader) existingPoints(ctx context.Context, names []string, keyVariant string) (map[string]string, error) {
	distinct := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}

	query := `SELECT point_id, point_name, display_name FROM public.data_points WHERE point_name = ANY($1)`
	result, err := l.tx.QueryContext(ctx, query, pq.Array(distinct))
	if err != nil {
		return nil, fmt.Errorf("data point existence check failed: %w", err)
	}
	defer result.Close()

	existing := make(map[string]string)
	for result.Next() {
		var pointID, name string
		var displayName sql.NullString
		if err := result.Scan(&pointID, &name, &displayName); err != nil {
			return nil, fmt.Errorf("data point existence scan failed: %w", err)
		}
		var display *string
		if displayName.Valid {
			display = &displayName.String
		}
		key := domain.PointDedupKey(keyVariant, name, display)
		// First stored row wins when several share a key.
		if _, ok := existing[key]; !ok {
			existing[key] = pointID
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("data point existence iteration failed: %w", err)
	}
	return existing, nil
}

const insertAssetPointSQL = `
	INSERT INTO public.asset_points (
		id, expression, precedence, status, symbol, unit, point_id, asset_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const insertAssetTypePointSQL = `
	INSERT INTO public.asset_type_points (
		id, expression, precedence, status, symbol, unit, point_id, asset_type_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// InsertAssetPointLinks loads asset→point links, skipping (asset, point)
// pairs already persisted so reruns never duplicate relationship rows.
func (l *Loader) InsertAssetPointLinks(ctx context.Context, rows []domain.PointLinkRow) (int, error) {
	return l.insertLinks(ctx, rows, "public.asset_points", "asset_id", insertAssetPointSQL)
}

// InsertAssetTypePointLinks loads asset type→point links with the same
// rerun-safe pair check.
func (l *Loader) InsertAssetTypePointLinks(ctx context.Context, rows []domain.PointLinkRow) (int, error) {
	return l.insertLinks(ctx, rows, "public.asset_type_points", "asset_type_id", insertAssetTypePointSQL)
}

func (l *Loader) insertLinks(ctx context.Context, rows []domain.PointLinkRow, table, ownerColumn, insertSQL string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	owners := make([]string, 0, len(rows))
	ownerSeen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, ok := ownerSeen[r.OwnerID]; ok {
			continue
		}
		ownerSeen[r.OwnerID] = struct{}{}
		owners = append(owners, r.OwnerID)
	}

	query := fmt.Sprintf("SELECT %s, point_id FROM %s WHERE %s = ANY($1)", ownerColumn, table, ownerColumn)
	result, err := l.tx.QueryContext(ctx, query, pq.Array(owners))
	if err != nil {
		return 0, fmt.Errorf("link existence check on %s failed: %w", table, err)
	}
	defer result.Close()

	type pair struct{ owner, point string }
	existing := make(map[pair]struct{})
	for result.Next() {
		var owner, point string
		if err := result.Scan(&owner, &point); err != nil {
			return 0, fmt.Errorf("link existence scan on %s failed: %w", table, err)
		}
		existing[pair{owner: owner, point: point}] = struct{}{}
	}
	if err := result.Err(); err != nil {
		return 0, fmt.Errorf("link existence iteration on %s failed: %w", table, err)
	}

	var inserts [][]any
	for i := range rows {
		if _, ok := existing[pair{owner: rows[i].OwnerID, point: rows[i].PointID}]; ok {
			continue
		}
		rows[i].ID = uuid.New().String()
		inserts = append(inserts, []any{
			rows[i].ID, rows[i].Expression, rows[i].Precedence, rows[i].Status,
			rows[i].Symbol, rows[i].Unit, rows[i].PointID, rows[i].OwnerID,
		})
	}

	if err := database.ExecBatch(ctx, l.tx, insertSQL, inserts); err != nil {
		return 0, err
	}
	l.logger.Info("Loaded point links",
		zap.String("table", table),
		zap.Int("inserted", len(inserts)),
		zap.Int("skipped_existing", len(rows)-len(inserts)),
	)
	return len(inserts), nil
}
