package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
	"github.com/ajithnectar/neo4j-migration-entities/internal/resolver"
)

func strPtr(s string) *string { return &s }

func clientIDs(rows []domain.ClientRow) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ClientID
	}
	return ids
}

func TestOrderClients_ParentBeforeChild(t *testing.T) {
	rows := []domain.ClientRow{
		{ClientID: "child", Colony: strPtr("root")},
		{ClientID: "root"},
	}

	ordered := resolver.OrderClients(rows, zap.NewNop())
	require.Equal(t, []string{"root", "child"}, clientIDs(ordered))
}

func TestOrderClients_DanglingColonyCleared(t *testing.T) {
	rows := []domain.ClientRow{
		{ClientID: "A"},
		{ClientID: "B", Colony: strPtr("A")},
		{ClientID: "C", Colony: strPtr("Z")},
	}

	ordered := resolver.OrderClients(rows, zap.NewNop())
	require.Len(t, ordered, 3)

	ids := clientIDs(ordered)
	require.Less(t, indexOf(ids, "A"), indexOf(ids, "B"))

	for _, row := range ordered {
		if row.ClientID == "C" {
			require.Nil(t, row.Colony)
		}
	}
}

func TestOrderClients_SelfReference(t *testing.T) {
	rows := []domain.ClientRow{
		{ClientID: "solo", Colony: strPtr("solo")},
	}

	ordered := resolver.OrderClients(rows, zap.NewNop())
	require.Len(t, ordered, 1)
	require.Equal(t, "solo", ordered[0].ClientID)
}

func TestOrderClients_DeepChain(t *testing.T) {
	rows := []domain.ClientRow{
		{ClientID: "grandchild", Colony: strPtr("child")},
		{ClientID: "child", Colony: strPtr("root")},
		{ClientID: "root"},
	}

	ordered := resolver.OrderClients(rows, zap.NewNop())
	require.Equal(t, []string{"root", "child", "grandchild"}, clientIDs(ordered))
}

func TestOrderClients_CycleStillEmitsEveryRow(t *testing.T) {
	rows := []domain.ClientRow{
		{ClientID: "a", Colony: strPtr("b")},
		{ClientID: "b", Colony: strPtr("a")},
	}

	ordered := resolver.OrderClients(rows, zap.NewNop())
	require.ElementsMatch(t, []string{"a", "b"}, clientIDs(ordered))
}

func TestOrderClients_StableForIndependentRows(t *testing.T) {
	rows := []domain.ClientRow{
		{ClientID: "x"},
		{ClientID: "y"},
		{ClientID: "z"},
	}

	ordered := resolver.OrderClients(rows, zap.NewNop())
	require.Equal(t, []string{"x", "y", "z"}, clientIDs(ordered))
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
