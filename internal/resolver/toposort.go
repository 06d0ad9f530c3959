// Package resolver orders self-referential row batches so that referenced
// rows load before the rows that reference them.
package resolver

import (
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/domain"
)

// OrderClients returns the client batch in an order where every colony
// parent precedes its children. A colony reference that does not resolve to
// a client in the same batch is rewritten to nil first and logged as a data
// quality warning, so no row can be stuck behind a dangling pointer.
func OrderClients(rows []domain.ClientRow, logger *zap.Logger) []domain.ClientRow {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		index[row.ClientID] = i
	}

	// Null out colony references that point outside the batch.
	for i := range rows {
		if rows[i].Colony == nil {
			continue
		}
		if _, ok := index[*rows[i].Colony]; !ok {
			logger.Warn("Client colony reference not present in batch, clearing",
				zap.String("client_id", rows[i].ClientID),
				zap.String("colony", *rows[i].Colony),
			)
			rows[i].Colony = nil
		}
	}

	// Kahn's algorithm: an edge runs from a referenced client to each client
	// referencing it.
	dependents := make(map[int][]int, len(rows))
	inDegree := make([]int, len(rows))
	for i, row := range rows {
		if row.Colony == nil {
			continue
		}
		parent := index[*row.Colony]
		if parent == i {
			// Self-reference resolves trivially.
			continue
		}
		dependents[parent] = append(dependents[parent], i)
		inDegree[i]++
	}

	queue := make([]int, 0, len(rows))
	for i := range rows {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	ordered := make([]domain.ClientRow, 0, len(rows))
	emitted := make([]bool, len(rows))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		ordered = append(ordered, rows[i])
		emitted[i] = true
		for _, dep := range dependents[i] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	// The null-rewrite above makes cycles the only way to leave nodes
	// unreached; append leftovers in original order rather than losing them.
	if len(ordered) < len(rows) {
		for i, row := range rows {
			if !emitted[i] {
				logger.Warn("Client row unreachable by dependency order, appending",
					zap.String("client_id", row.ClientID),
				)
				ordered = append(ordered, row)
			}
		}
	}
	return ordered
}
