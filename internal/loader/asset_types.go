package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ajithnectar/neo4j-migration-entities/internal/database"
	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// NextAssetTypeID returns max(id)+1 from the asset type table, so newly
// assigned sequential ids never collide with persisted rows.
func NextAssetTypeID(ctx context.Context, tx *sql.Tx) (int64, error) {
	var maxID int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM public.asset_type`).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to read max asset type id: %w", err)
	}
	return maxID + 1, nil
}

const upsertAssetTypeSQL = `
	INSERT INTO public.asset_type (
		id, name, parent_name, status, template_name, client_id
	) VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (name) DO UPDATE SET
		parent_name = EXCLUDED.parent_name,
		status = EXCLUDED.status,
		template_name = EXCLUDED.template_name,
		client_id = EXCLUDED.client_id
`

// UpsertAssetTypes loads asset type rows keyed by their unique name. A row
// that already exists keeps its original id; only its attributes update.
func (l *Loader) UpsertAssetTypes(ctx context.Context, rows []domain.AssetTypeRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{r.ID, r.Name, r.ParentName, r.Status, r.TemplateName, r.ClientID})
	}
	return database.ExecBatch(ctx, l.tx, upsertAssetTypeSQL, args)
}

// FetchAssetTypes reads the whole asset type table for the lookup artifact
// snapshot.
func FetchAssetTypes(ctx context.Context, db *sql.DB) ([]map[string]any, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, parent_name, status, template_name, client_id
		FROM public.asset_type
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset types: %w", err)
	}
	defer rows.Close()

	var result []map[string]any
	for rows.Next() {
		var id int64
		var name, status, clientID string
		var parentName, templateName sql.NullString
		if err := rows.Scan(&id, &name, &parentName, &status, &templateName, &clientID); err != nil {
			return nil, fmt.Errorf("failed to scan asset type: %w", err)
		}
		record := map[string]any{
			"id":        id,
			"name":      name,
			"status":    status,
			"client_id": clientID,
		}
		if parentName.Valid {
			record["parent_name"] = parentName.String
		}
		if templateName.Valid {
			record["template_name"] = templateName.String
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset types: %w", err)
	}
	return result, nil
}

// AssetTypeColumns is the column order of the lookup artifact snapshot.
var AssetTypeColumns = []string{"id", "name", "parent_name", "status", "template_name", "client_id"}
