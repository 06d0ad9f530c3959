package domain

import "time"

// ClientRow is one tenant/client destined for public.clients.
// Colony is an optional self-referential parent client reference: it must be
// nil or point at a client present in the same batch or already persisted.
type ClientRow struct {
	ClientID         string
	ClientName       *string
	Location         *string
	LocationName     *string
	TicketStartIndex int
	Status           string
	TicketPrefix     *string
	Type             string
	Colony           *string
	Domain           *string
	CreatedBy        *string
	CreatedOn        int64 // epoch millis
	ReferenceNumber  *string
}

// SubCommunityRow is one sub-community destined for public.sub_community.
type SubCommunityRow struct {
	ID          string
	GeoLocation *string
	Name        *string
	Status      string
	CommunityID *string
	Domain      *string
	Type        *string
}

// BuildingRow is one building destined for public.building.
type BuildingRow struct {
	ID             string
	Name           *string
	Status         string
	GeoLocation    *string
	SiteCode       *string
	OpenTime       *time.Time
	CloseTime      *time.Time
	Domain         *string
	Type           *string
	CreatedBy      *string
	CreatedOn      *time.Time
	SubCommunityID *string
}

// SpaceRow is one space destined for public.space. BuildingID is required:
// rows without it never reach this type.
type SpaceRow struct {
	ID              string
	LayoutHierarchy int
	Name            *string
	Status          string
	BuildingID      string
	Domain          *string
	Type            *string
}

// AssetRow is one asset destined for public.assets.
type AssetRow struct {
	ID                 string
	AssetCode          *string
	CostOfPurchase     *float64
	CreatedBy          *string
	CreatedOn          *time.Time
	DisplayName        *string
	Make               *string
	Model              *string
	Status             string
	UpdatedBy          *string
	UpdatedOn          *time.Time
	AnalyticsProfileID *string
	ClientID           *string
	Domain             *string
	AssetSettingsID    *string
	BuildingID         *string
	SubCommunityID     *string
	ActiveContract     *string
	TypeID             *string
}

// AssetSpaceRow links an asset to a space.
type AssetSpaceRow struct {
	AssetID string
	SpaceID string
}

// DataPointRow is one measurement point destined for public.data_points.
// PointID always mirrors ID; both are generated once and reused on rerun.
type DataPointRow struct {
	ID             string
	PointID        string
	AccessType     *string
	DataType       *string
	DisplayName    *string
	Name           string
	RemoteDataType *string
	Status         string
	Symbol         *string
	Unit           *string
}

// PointLinkRow links a data point to an asset or asset type, carrying the
// point's expression metadata for that owner.
type PointLinkRow struct {
	ID         string
	Expression *string
	Precedence *int
	Status     string
	Symbol     *string
	Unit       *string
	PointID    string
	OwnerID    string
}

// TypeRow is one entity type destined for public.types.
type TypeRow struct {
	Name         string
	ParentName   *string
	Status       string
	TemplateName *string
}

// AssetTypeRow is one asset type destined for public.asset_type. IDs are
// assigned sequentially above the current table maximum.
type AssetTypeRow struct {
	ID           int64
	Name         string
	ParentName   *string
	Status       string
	TemplateName *string
	ClientID     string
}

// DomainRow is one tenant domain destined for public.domain.
type DomainRow struct {
	DomainID         int
	Domain           *string
	Name             *string
	Status           string
	URLSubDomain     *string
	SettingsClientID *string
}
