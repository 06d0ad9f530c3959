// Package loader performs idempotent batched writes against the target
// PostgreSQL store. Natural-key upserts make reruns converge instead of
// duplicating rows.
package loader

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/database"
	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// Loader writes one migration step's rows inside a single transaction.
type Loader struct {
	tx     *sql.Tx
	logger *zap.Logger
}

// New creates a loader bound to the step's transaction.
func New(tx *sql.Tx, logger *zap.Logger) *Loader {
	return &Loader{tx: tx, logger: logger}
}

const upsertClientSQL = `
	INSERT INTO public.clients (
		client_id, client_name, location, location_name,
		ticket_start_index, status, ticket_prefix, type,
		colony, domain, created_by, created_on
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (client_id) DO UPDATE SET
		client_name = EXCLUDED.client_name,
		location = EXCLUDED.location,
		location_name = EXCLUDED.location_name,
		ticket_start_index = EXCLUDED.ticket_start_index,
		status = EXCLUDED.status,
		ticket_prefix = EXCLUDED.ticket_prefix,
		type = EXCLUDED.type,
		colony = EXCLUDED.colony,
		domain = EXCLUDED.domain,
		created_by = EXCLUDED.created_by,
		created_on = EXCLUDED.created_on
`

// UpsertClients loads client rows. The caller is responsible for ordering
// the batch so colony parents precede their children.
func (l *Loader) UpsertClients(ctx context.Context, rows []domain.ClientRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{
			r.ClientID, r.ClientName, r.Location, r.LocationName,
			r.TicketStartIndex, r.Status, r.TicketPrefix, r.Type,
			r.Colony, r.Domain, r.CreatedBy, r.CreatedOn,
		})
	}
	return database.ExecBatch(ctx, l.tx, upsertClientSQL, args)
}

const upsertCommunitySQL = `
	INSERT INTO public.clients (
		client_id, client_name, location, location_name,
		ticket_start_index, status, ticket_prefix, type,
		colony, domain, created_by, created_on, reference_number
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (client_id) DO UPDATE SET
		client_name = EXCLUDED.client_name,
		location = EXCLUDED.location,
		location_name = EXCLUDED.location_name,
		ticket_start_index = EXCLUDED.ticket_start_index,
		status = EXCLUDED.status,
		ticket_prefix = EXCLUDED.ticket_prefix,
		type = EXCLUDED.type,
		colony = EXCLUDED.colony,
		domain = EXCLUDED.domain,
		created_by = EXCLUDED.created_by,
		created_on = EXCLUDED.created_on,
		reference_number = EXCLUDED.reference_number
`

// UpsertCommunities loads community rows into the clients table, carrying
// the graph identifier as the reference number.
func (l *Loader) UpsertCommunities(ctx context.Context, rows []domain.ClientRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{
			r.ClientID, r.ClientName, r.Location, r.LocationName,
			r.TicketStartIndex, r.Status, r.TicketPrefix, r.Type,
			r.Colony, r.Domain, r.CreatedBy, r.CreatedOn, r.ReferenceNumber,
		})
	}
	return database.ExecBatch(ctx, l.tx, upsertCommunitySQL, args)
}

const upsertSubCommunitySQL = `
	INSERT INTO public.sub_community (
		identifier, geo_location, name, status, community_id, domain, type
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (identifier) DO UPDATE SET
		geo_location = EXCLUDED.geo_location,
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		community_id = EXCLUDED.community_id,
		domain = EXCLUDED.domain,
		type = EXCLUDED.type
`

// UpsertSubCommunities loads sub-community rows.
func (l *Loader) UpsertSubCommunities(ctx context.Context, rows []domain.SubCommunityRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{r.ID, r.GeoLocation, r.Name, r.Status, r.CommunityID, r.Domain, r.Type})
	}
	return database.ExecBatch(ctx, l.tx, upsertSubCommunitySQL, args)
}

const upsertBuildingSQL = `
	INSERT INTO public.building (
		identifier, name, status, geo_location, site_code,
		store_open_time, store_close_time, domain, type,
		created_by, created_on, sub_community_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (identifier) DO UPDATE SET
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		geo_location = EXCLUDED.geo_location,
		site_code = EXCLUDED.site_code,
		store_open_time = EXCLUDED.store_open_time,
		store_close_time = EXCLUDED.store_close_time,
		domain = EXCLUDED.domain,
		type = EXCLUDED.type,
		created_by = EXCLUDED.created_by,
		created_on = EXCLUDED.created_on,
		sub_community_id = EXCLUDED.sub_community_id
`

// UpsertBuildings loads building rows.
func (l *Loader) UpsertBuildings(ctx context.Context, rows []domain.BuildingRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{
			r.ID, r.Name, r.Status, r.GeoLocation, r.SiteCode,
			r.OpenTime, r.CloseTime, r.Domain, r.Type,
			r.CreatedBy, r.CreatedOn, r.SubCommunityID,
		})
	}
	return database.ExecBatch(ctx, l.tx, upsertBuildingSQL, args)
}

const upsertSpaceSQL = `
	INSERT INTO public.space (
		identifier, layout_hierarchy, name, status,
		building_identifier, domain, type
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (identifier) DO UPDATE SET
		layout_hierarchy = EXCLUDED.layout_hierarchy,
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		building_identifier = EXCLUDED.building_identifier,
		domain = EXCLUDED.domain,
		type = EXCLUDED.type
`

// UpsertSpaces loads space rows.
func (l *Loader) UpsertSpaces(ctx context.Context, rows []domain.SpaceRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{r.ID, r.LayoutHierarchy, r.Name, r.Status, r.BuildingID, r.Domain, r.Type})
	}
	return database.ExecBatch(ctx, l.tx, upsertSpaceSQL, args)
}

const upsertAssetSQL = `
	INSERT INTO public.assets (
		identifier, asset_code, cost_of_purchase, created_by, created_on,
		display_name, make, model, status, updated_by, updated_on,
		analytics_profile_id, client_id, colony, asset_settings_id, site_id,
		sub_community_id, active_contract, type
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	ON CONFLICT (identifier) DO UPDATE SET
		asset_code = EXCLUDED.asset_code,
		cost_of_purchase = EXCLUDED.cost_of_purchase,
		created_by = EXCLUDED.created_by,
		created_on = EXCLUDED.created_on,
		display_name = EXCLUDED.display_name,
		make = EXCLUDED.make,
		model = EXCLUDED.model,
		status = EXCLUDED.status,
		updated_by = EXCLUDED.updated_by,
		updated_on = EXCLUDED.updated_on,
		analytics_profile_id = EXCLUDED.analytics_profile_id,
		client_id = EXCLUDED.client_id,
		colony = EXCLUDED.colony,
		asset_settings_id = EXCLUDED.asset_settings_id,
		site_id = EXCLUDED.site_id,
		sub_community_id = EXCLUDED.sub_community_id,
		active_contract = EXCLUDED.active_contract,
		type = EXCLUDED.type
`

// UpsertAssets loads asset rows.
func (l *Loader) UpsertAssets(ctx context.Context, rows []domain.AssetRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{
			r.ID, r.AssetCode, r.CostOfPurchase, r.CreatedBy, r.CreatedOn,
			r.DisplayName, r.Make, r.Model, r.Status, r.UpdatedBy, r.UpdatedOn,
			r.AnalyticsProfileID, r.ClientID, r.Domain, r.AssetSettingsID, r.BuildingID,
			r.SubCommunityID, r.ActiveContract, r.TypeID,
		})
	}
	return database.ExecBatch(ctx, l.tx, upsertAssetSQL, args)
}

const insertAssetSpaceSQL = `
	INSERT INTO public.asset_spaces (identifier, spaces_identifier)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING
`

// InsertAssetSpaces loads asset-space link rows. Existing pairs are left
// untouched.
func (l *Loader) InsertAssetSpaces(ctx context.Context, rows []domain.AssetSpaceRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{r.AssetID, r.SpaceID})
	}
	return database.ExecBatch(ctx, l.tx, insertAssetSpaceSQL, args)
}

const upsertTypeSQL = `
	INSERT INTO public.types (name, parent_name, status, template_name)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (name) DO UPDATE SET
		parent_name = EXCLUDED.parent_name,
		status = EXCLUDED.status,
		template_name = EXCLUDED.template_name
`

// UpsertTypes loads type rows keyed by name.
func (l *Loader) UpsertTypes(ctx context.Context, rows []domain.TypeRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{r.Name, r.ParentName, r.Status, r.TemplateName})
	}
	return database.ExecBatch(ctx, l.tx, upsertTypeSQL, args)
}

const upsertDomainSQL = `
	INSERT INTO public.domain (
		domain_id, domain, name, status, url_sub_domain, settings_client_id
	) VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (domain_id) DO UPDATE SET
		domain = EXCLUDED.domain,
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		url_sub_domain = EXCLUDED.url_sub_domain,
		settings_client_id = EXCLUDED.settings_client_id
`

// UpsertDomains loads tenant domain rows.
func (l *Loader) UpsertDomains(ctx context.Context, rows []domain.DomainRow) error {
	args := make([][]any, 0, len(rows))
	for _, r := range rows {
		args = append(args, []any{r.DomainID, r.Domain, r.Name, r.Status, r.URLSubDomain, r.SettingsClientID})
	}
	return database.ExecBatch(ctx, l.tx, upsertDomainSQL, args)
}
