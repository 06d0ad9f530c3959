// Package validator pre-checks cross-entity foreign keys against the target
// store so that constraint violations never surface as load errors.
package validator

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// Referential answers "which of these referenced keys already exist" with
// one round trip per referenced table.
type Referential struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewReferential creates a validator over the target store.
func NewReferential(db *sql.DB, logger *zap.Logger) *Referential {
	return &Referential{db: db, logger: logger}
}

// ExistingKeys returns the subset of keys present in table.column, as a map
// from lowercased input key to the canonical stored casing. The comparison
// is case-insensitive; the stored casing wins.
func (v *Referential) ExistingKeys(ctx context.Context, table, column string, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	distinct := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		lower := strings.ToLower(key)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		distinct = append(distinct, lower)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE lower(%s) = ANY($1)", column, table, column)
	rows, err := v.db.QueryContext(ctx, query, pq.Array(distinct))
	if err != nil {
		return nil, fmt.Errorf("existence check on %s failed: %w", table, err)
	}
	defer rows.Close()

	existing := make(map[string]string)
	for rows.Next() {
		var stored string
		if err := rows.Scan(&stored); err != nil {
			return nil, fmt.Errorf("existence check scan on %s failed: %w", table, err)
		}
		existing[strings.ToLower(stored)] = stored
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("existence check iteration on %s failed: %w", table, err)
	}
	return existing, nil
}

// FilterSubCommunities drops sub-community rows whose community reference
// does not resolve to a persisted client, substituting the canonical stored
// casing into the kept rows.
func (v *Referential) FilterSubCommunities(ctx context.Context, rows []domain.SubCommunityRow) ([]domain.SubCommunityRow, error) {
	var keys []string
	for _, row := range rows {
		if row.CommunityID != nil {
			keys = append(keys, *row.CommunityID)
		}
	}
	existing, err := v.ExistingKeys(ctx, "public.clients", "client_id", keys)
	if err != nil {
		return nil, err
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.CommunityID != nil {
			stored, ok := existing[strings.ToLower(*row.CommunityID)]
			if !ok {
				v.logger.Warn("Dropping sub-community referencing unknown client",
					zap.String("sub_community_id", row.ID),
					zap.String("community_id", *row.CommunityID),
				)
				continue
			}
			row.CommunityID = &stored
		}
		kept = append(kept, row)
	}
	return kept, nil
}

// FilterAssetSpaces drops asset-space links whose space does not exist in
// the target store, substituting the canonical stored casing.
func (v *Referential) FilterAssetSpaces(ctx context.Context, rows []domain.AssetSpaceRow) ([]domain.AssetSpaceRow, error) {
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.SpaceID)
	}
	existing, err := v.ExistingKeys(ctx, "public.space", "identifier", keys)
	if err != nil {
		return nil, err
	}

	kept := rows[:0]
	for _, row := range rows {
		stored, ok := existing[strings.ToLower(row.SpaceID)]
		if !ok {
			v.logger.Warn("Dropping asset-space link referencing unknown space",
				zap.String("asset_id", row.AssetID),
				zap.String("space_id", row.SpaceID),
			)
			continue
		}
		row.SpaceID = stored
		kept = append(kept, row)
	}
	return kept, nil
}
