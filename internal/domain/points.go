package domain

// Data point dedup key variants. The reuse key differs between deployed
// schema variants, so it is configuration rather than a fixed rule.
const (
	PointKeyName        = "name"
	PointKeyNameDisplay = "name_display"
)

// PointDedupKey builds the natural dedup key for a data point under the
// given variant. The same key matches staged rows against persisted rows, so
// generated ids stay stable across reruns.
func PointDedupKey(variant string, name string, displayName *string) string {
	if variant == PointKeyNameDisplay {
		display := ""
		if displayName != nil {
			display = *displayName
		}
		return name + "\x1f" + display
	}
	return name
}
