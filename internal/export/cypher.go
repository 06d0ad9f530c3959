package export

// Count query for the export result set, domain-scoped. The sub-community
// filter clause is appended for partitioned exports.
const countQuery = `
MATCH (subCommunity:SubCommunity {domain: $domain})-[:tags]->(building)
      -[:equips]->(asset)-[:sharePoint]->(point:Point)
OPTIONAL MATCH (asset)<-[:tags]-(spaces)
WHERE subCommunity.status <> 'DELETED'
  AND building.status <> 'DELETED'
  AND asset.status <> 'DELETED'
  AND point.status <> 'DELETED'
  AND (spaces IS NULL OR spaces.status <> 'DELETED')
%s
RETURN count(*) AS total_count
`

// Data query for one export window. Ordering is stable across windows so
// SKIP/LIMIT pagination never tears a result set; the sub-community filter
// clause is appended for partitioned exports.
const dataQuery = `
MATCH (subCommunity:SubCommunity {domain: $domain})-[:tags]->(building)
      -[:equips]->(asset)-[:sharePoint]->(point:Point)
OPTIONAL MATCH (asset)<-[:tags]-(spaces)
WHERE subCommunity.status <> 'DELETED'
  AND building.status <> 'DELETED'
  AND asset.status <> 'DELETED'
  AND point.status <> 'DELETED'
  AND (spaces IS NULL OR spaces.status <> 'DELETED')
%s
RETURN
    asset.identifier         AS asset_id,
    asset.displayName        AS asset_name,
    asset.assetCode          AS asset_code,
    asset.location           AS location,
    asset.costOfPurchase     AS cost_of_purchase,
    asset.createdBy          AS created_by,
    asset.createdOn          AS created_on,
    asset.status             AS asset_status,
    asset.domain             AS asset_domain,
    building.ownerClientId   AS community_id,
    building.ownerName       AS community_name,
    subCommunity.identifier  AS sub_community_id,
    subCommunity.name        AS sub_community_name,
    subCommunity.location    AS sub_community_location,
    subCommunity.status      AS sub_community_status,
    subCommunity.domain      AS sub_community_domain,
    subCommunity.createdBy   AS sub_community_created_by,
    subCommunity.createdOn   AS sub_community_created_on,
    labels(subCommunity)[0]  AS sub_community_type,
    labels(asset)[0]         AS asset_type,
    building.identifier      AS building_id,
    building.name            AS building_name,
    building.status          AS building_status,
    building.location        AS building_location,
    building.siteCode        AS building_site_code,
    building.storeOpenTime   AS building_open_time,
    building.storeCloseTime  AS building_close_time,
    building.domain          AS building_domain,
    building.createdBy       AS building_created_by,
    building.createdOn       AS building_created_on,
    labels(building)[0]      AS building_type,
    spaces.identifier        AS spaces_id,
    spaces.name              AS spaces_name,
    spaces.layoutHierarchy   AS spaces_layout,
    spaces.status            AS spaces_status,
    spaces.domain            AS spaces_domain,
    labels(spaces)[0]        AS spaces_type,
    point.identifier         AS data_point_id,
    point.pointName          AS point_name,
    point.displayName        AS point_display_name,
    point.dataType           AS point_data_type,
    point.remoteDataType     AS remote_data_type,
    point.accessType         AS access_type,
    point.status             AS point_status,
    point.unitSymbol         AS point_symbol,
    point.unit               AS point_unit,
    point.expression         AS point_expression,
    point.precedence         AS point_precedence,
    point.type               AS point_type
ORDER BY building_name, asset_name, point_name DESC
SKIP $skip LIMIT $limit
`

// partitionFilter scopes the export to one sub-community.
const partitionFilter = `  AND subCommunity.identifier = $subCommunityID`

// assetTypeQuery walks the template hierarchy for the asset type staging
// file.
const assetTypeQuery = `
MATCH (n:Template {name:'Asset'})-[:extends*]->(parent:Template)-[:extends]->(child:Template)
RETURN parent.name AS parent_name,
       child.name AS child_name,
       child.templateName AS child_template_name
`

// clientQuery fetches the root tenant and its children. The child rows carry
// the root's client id as their colony so the parent/child chain can be
// ordered before load.
const clientQuery = `
MATCH (root:DefaultTenant {clientId: $rootClientID})
RETURN
    root.clientId AS client_id,
    root.clientName AS client_name,
    root.location AS location,
    root.locationName AS location_name,
    coalesce(root.status, 'ACTIVE') AS status,
    root.domain AS domain,
    root.typeName AS type_name,
    root.createdBy AS created_by,
    root.createdOn AS created_on,
    root.updatedBy AS updated_by,
    root.updatedOn AS updated_on,
    root.identifier AS identifier,
    null AS colony

UNION

MATCH (root:DefaultTenant {clientId: $rootClientID})-[:tenant]->(child)
RETURN
    child.clientId AS client_id,
    child.clientName AS client_name,
    child.location AS location,
    child.locationName AS location_name,
    coalesce(child.status, 'ACTIVE') AS status,
    child.domain AS domain,
    child.typeName AS type_name,
    child.createdBy AS created_by,
    child.createdOn AS created_on,
    child.updatedBy AS updated_by,
    child.updatedOn AS updated_on,
    child.identifier AS identifier,
    root.clientId AS colony

ORDER BY client_id
`

// communityQuery fetches community nodes for one domain.
const communityQuery = `
MATCH (n:Community {domain: $domain})
RETURN
    n.clientId AS client_id,
    n.clientName AS client_name,
    n.location AS location,
    n.locationName AS location_name,
    coalesce(n.status, 'ACTIVE') AS status,
    n.domain AS domain,
    n.typeName AS type_name,
    n.createdBy AS created_by,
    n.createdOn AS created_on,
    n.updatedBy AS updated_by,
    n.updatedOn AS updated_on,
    n.identifier AS identifier
ORDER BY client_id
`

// domainQuery fetches tenant domains.
const domainQuery = `
MATCH (n:DefaultTenant)
RETURN
    coalesce(n.id, elementId(n)) AS tenant_id,
    n.clientId AS client_id,
    n.clientName AS client_name,
    coalesce(n.status, 'ACTIVE') AS status,
    n.applicationUrl AS application_url,
    n.settingsClientId AS settings_client_id
ORDER BY tenant_id
`
