package mapper

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// ClientRows maps tenant records fetched from the graph to client rows,
// keeping the first record per client id. The legacy "alpine" domain is
// rewritten to "nectarit"; a missing created-on defaults to now.
func ClientRows(records []map[string]any, logger *zap.Logger) []domain.ClientRow {
	seen := make(map[string]struct{})
	var rows []domain.ClientRow
	for _, record := range records {
		clientID := graphString(record, "client_id")
		if clientID == nil {
			logger.Warn("Skipping client record with missing client_id")
			continue
		}
		if _, ok := seen[*clientID]; ok {
			continue
		}
		seen[*clientID] = struct{}{}

		clientDomain := graphString(record, "domain")
		if clientDomain != nil && strings.EqualFold(*clientDomain, "alpine") {
			clientDomain = strPtr("nectarit")
		}

		createdOn := graphEpochMillis(record, "created_on")
		if createdOn == 0 {
			createdOn = time.Now().UTC().UnixMilli()
		}

		prefix := strings.ToUpper(*clientID)
		rows = append(rows, domain.ClientRow{
			ClientID:         *clientID,
			ClientName:       graphString(record, "client_name"),
			Location:         graphString(record, "location"),
			LocationName:     graphString(record, "location_name"),
			TicketStartIndex: 0,
			Status:           statusOrActive(graphString(record, "status")),
			TicketPrefix:     &prefix,
			Type:             strings.ReplaceAll(deref(graphString(record, "type_name")), " ", ""),
			Colony:           graphString(record, "colony"),
			Domain:           clientDomain,
			CreatedBy:        graphString(record, "created_by"),
			CreatedOn:        createdOn,
		})
	}
	return rows
}

// CommunityRows maps community records fetched from the graph to client
// rows, carrying the graph identifier as the reference number.
func CommunityRows(records []map[string]any, logger *zap.Logger) []domain.ClientRow {
	seen := make(map[string]struct{})
	skipped := 0
	var rows []domain.ClientRow
	for _, record := range records {
		clientID := graphString(record, "client_id")
		if clientID == nil {
			logger.Warn("Skipping community record with missing client_id")
			skipped++
			continue
		}
		if _, ok := seen[*clientID]; ok {
			continue
		}
		seen[*clientID] = struct{}{}

		typeName := graphString(record, "type_name")
		if typeName == nil {
			logger.Warn("type_name is missing for community, using empty string", zap.String("client_id", *clientID))
		}

		prefix := strings.ToUpper(*clientID)
		rows = append(rows, domain.ClientRow{
			ClientID:         *clientID,
			ClientName:       graphString(record, "client_name"),
			Location:         graphString(record, "location"),
			LocationName:     graphString(record, "location_name"),
			TicketStartIndex: 0,
			Status:           statusOrActive(graphString(record, "status")),
			TicketPrefix:     &prefix,
			Type:             strings.ReplaceAll(deref(typeName), " ", ""),
			Domain:           graphString(record, "domain"),
			CreatedBy:        graphString(record, "created_by"),
			CreatedOn:        graphEpochMillis(record, "created_on"),
			ReferenceNumber:  graphString(record, "identifier"),
		})
	}
	if skipped > 0 {
		logger.Warn("Skipped invalid community records during mapping", zap.Int("count", skipped))
	}
	return rows
}

// DomainRows maps tenant domain records to sequential-id domain rows.
func DomainRows(records []map[string]any) []domain.DomainRow {
	var rows []domain.DomainRow
	for i, record := range records {
		clientID := graphString(record, "client_id")
		if clientID == nil {
			clientID = graphString(record, "tenant_id")
		}
		rows = append(rows, domain.DomainRow{
			DomainID:         i + 1,
			Domain:           clientID,
			Name:             graphString(record, "client_name"),
			Status:           statusOrActive(graphString(record, "status")),
			URLSubDomain:     graphString(record, "application_url"),
			SettingsClientID: graphString(record, "settings_client_id"),
		})
	}
	return rows
}

// graphString extracts an optional string property from a graph record.
func graphString(record map[string]any, key string) *string {
	switch v := record[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return &v
	default:
		return nil
	}
}

// graphEpochMillis extracts an epoch millis property, accepting the integer
// and string shapes the graph returns. Zero means absent.
func graphEpochMillis(record map[string]any, key string) int64 {
	switch v := record[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if t := EpochToTime(&v); t != nil {
			return t.UnixMilli()
		}
		return 0
	default:
		return 0
	}
}
