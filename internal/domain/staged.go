package domain

// ExportRecord is one normalized row of the staged building/asset/point
// export. Every field is optional: a nil pointer means the column was absent
// or empty in the staging file. Parsing into typed target rows happens in the
// mapper package; this type only fixes the schema once at the read boundary.
type ExportRecord struct {
	AssetID        *string
	AssetName      *string
	AssetCode      *string
	Location       *string
	CostOfPurchase *string
	CreatedBy      *string
	CreatedOn      *string
	AssetStatus    *string
	AssetDomain    *string

	CommunityID   *string
	CommunityName *string

	SubCommunityID        *string
	SubCommunityName      *string
	SubCommunityLocation  *string
	SubCommunityStatus    *string
	SubCommunityDomain    *string
	SubCommunityCreatedBy *string
	SubCommunityCreatedOn *string
	SubCommunityType      *string

	AssetType *string

	BuildingID        *string
	BuildingName      *string
	BuildingStatus    *string
	BuildingLocation  *string
	BuildingSiteCode  *string
	BuildingOpenTime  *string
	BuildingCloseTime *string
	BuildingDomain    *string
	BuildingCreatedBy *string
	BuildingCreatedOn *string
	BuildingType      *string

	SpaceID     *string
	SpaceName   *string
	SpaceLayout *string
	SpaceStatus *string
	SpaceDomain *string
	SpaceType   *string

	DataPointID      *string
	PointName        *string
	PointDisplayName *string
	PointDataType    *string
	RemoteDataType   *string
	AccessType       *string
	PointStatus      *string
	PointSymbol      *string
	PointUnit        *string
	PointExpression  *string
	PointPrecedence  *string
	PointType        *string

	// Present in some export variants only.
	AssetMake          *string
	AssetModel         *string
	AssetUpdatedBy     *string
	AssetUpdatedOn     *string
	AnalyticsProfileID *string
	AssetSettingsID    *string
	ActiveContract     *string
}

// NewExportRecord binds a normalized field map to the fixed export schema.
// Unknown keys are ignored; missing keys leave the field nil.
func NewExportRecord(fields map[string]*string) ExportRecord {
	return ExportRecord{
		AssetID:        fields["asset_id"],
		AssetName:      fields["asset_name"],
		AssetCode:      fields["asset_code"],
		Location:       fields["location"],
		CostOfPurchase: fields["cost_of_purchase"],
		CreatedBy:      fields["created_by"],
		CreatedOn:      fields["created_on"],
		AssetStatus:    fields["asset_status"],
		AssetDomain:    fields["asset_domain"],

		CommunityID:   fields["community_id"],
		CommunityName: fields["community_name"],

		SubCommunityID:        fields["sub_community_id"],
		SubCommunityName:      fields["sub_community_name"],
		SubCommunityLocation:  fields["sub_community_location"],
		SubCommunityStatus:    fields["sub_community_status"],
		SubCommunityDomain:    fields["sub_community_domain"],
		SubCommunityCreatedBy: fields["sub_community_created_by"],
		SubCommunityCreatedOn: fields["sub_community_created_on"],
		SubCommunityType:      fields["sub_community_type"],

		AssetType: fields["asset_type"],

		BuildingID:        fields["building_id"],
		BuildingName:      fields["building_name"],
		BuildingStatus:    fields["building_status"],
		BuildingLocation:  fields["building_location"],
		BuildingSiteCode:  fields["building_site_code"],
		BuildingOpenTime:  fields["building_open_time"],
		BuildingCloseTime: fields["building_close_time"],
		BuildingDomain:    fields["building_domain"],
		BuildingCreatedBy: fields["building_created_by"],
		BuildingCreatedOn: fields["building_created_on"],
		BuildingType:      fields["building_type"],

		SpaceID:     fields["spaces_id"],
		SpaceName:   fields["spaces_name"],
		SpaceLayout: fields["spaces_layout"],
		SpaceStatus: fields["spaces_status"],
		SpaceDomain: fields["spaces_domain"],
		SpaceType:   fields["spaces_type"],

		DataPointID:      fields["data_point_id"],
		PointName:        fields["point_name"],
		PointDisplayName: fields["point_display_name"],
		PointDataType:    fields["point_data_type"],
		RemoteDataType:   fields["remote_data_type"],
		AccessType:       fields["access_type"],
		PointStatus:      fields["point_status"],
		PointSymbol:      fields["point_symbol"],
		PointUnit:        fields["point_unit"],
		PointExpression:  fields["point_expression"],
		PointPrecedence:  fields["point_precedence"],
		PointType:        fields["point_type"],

		AssetMake:          fields["asset_make"],
		AssetModel:         fields["asset_model"],
		AssetUpdatedBy:     fields["asset_updated_by"],
		AssetUpdatedOn:     fields["asset_updated_on"],
		AnalyticsProfileID: fields["analytics_profile_id"],
		AssetSettingsID:    fields["asset_settings_id"],
		ActiveContract:     fields["active_contract"],
	}
}

// TypeRecord is one normalized row of the type hierarchy staging file.
type TypeRecord struct {
	ParentName        *string
	ChildName         *string
	ChildTemplateName *string
}

// NewTypeRecord binds a normalized field map to the type hierarchy schema.
func NewTypeRecord(fields map[string]*string) TypeRecord {
	return TypeRecord{
		ParentName:        fields["parent_name"],
		ChildName:         fields["child_name"],
		ChildTemplateName: fields["child_template_name"],
	}
}
