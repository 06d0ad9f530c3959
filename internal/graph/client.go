package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/config"
)

// Client wraps the Neo4j driver for read-only migration queries.
type Client struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewClient connects to Neo4j and verifies connectivity.
func NewClient(ctx context.Context, cfg *config.Neo4jConfig, logger *zap.Logger) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", cfg.URI, err)
	}
	logger.Info("Connected to Neo4j", zap.String("uri", cfg.URI))
	return &Client{driver: driver, logger: logger}, nil
}

// Close releases the underlying driver.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Collect runs a Cypher query and returns all records as maps keyed by the
// query's return aliases.
func (c *Client) Collect(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	c.logger.Debug("Running Cypher query", zap.String("cypher", cypher))
	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("cypher query failed: %w", err)
	}

	var records []map[string]any
	for result.Next(ctx) {
		records = append(records, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("cypher result iteration failed: %w", err)
	}

	c.logger.Debug("Fetched records from Neo4j", zap.Int("count", len(records)))
	return records, nil
}

// Count runs a counting query and returns the value of the single aliased
// count column in the first record.
func (c *Client) Count(ctx context.Context, cypher string, params map[string]any, alias string) (int64, error) {
	records, err := c.Collect(ctx, cypher, params)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	switch v := records[0][alias].(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("count query returned non-numeric %q value: %T", alias, v)
	}
}
