package staging

// ExportColumns is the versioned column order of the staged export files.
// It matches the return order of the export query; reordering it is a
// staging format change.
var ExportColumns = []string{
	"asset_id",
	"asset_name",
	"asset_code",
	"location",
	"cost_of_purchase",
	"created_by",
	"created_on",
	"asset_status",
	"asset_domain",
	"community_id",
	"community_name",
	"sub_community_id",
	"sub_community_name",
	"sub_community_location",
	"sub_community_status",
	"sub_community_domain",
	"sub_community_created_by",
	"sub_community_created_on",
	"sub_community_type",
	"asset_type",
	"building_id",
	"building_name",
	"building_status",
	"building_location",
	"building_site_code",
	"building_open_time",
	"building_close_time",
	"building_domain",
	"building_created_by",
	"building_created_on",
	"building_type",
	"spaces_id",
	"spaces_name",
	"spaces_layout",
	"spaces_status",
	"spaces_domain",
	"spaces_type",
	"data_point_id",
	"point_name",
	"point_display_name",
	"point_data_type",
	"remote_data_type",
	"access_type",
	"point_status",
	"point_symbol",
	"point_unit",
	"point_expression",
	"point_precedence",
	"point_type",
}

// AssetTypeExportColumns is the column order of the staged type hierarchy.
var AssetTypeExportColumns = []string{
	"parent_name",
	"child_name",
	"child_template_name",
}
