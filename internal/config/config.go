package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Neo4jConfig holds the source graph database connection settings.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// DatabaseConfig holds the target PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN builds the lib/pq connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// Config is the full migration tool configuration.
type Config struct {
	Neo4j    Neo4jConfig
	Database DatabaseConfig

	Export struct {
		DataDir      string // directory for staging CSV files
		BatchSize    int    // records per staging file
		Domain       string // community domain filter for the export query
		ManifestPath string // optional sub-community manifest (.csv or .xlsx)
		RootClientID string // root tenant for the client migration
	}

	Loader struct {
		// PointDedupKey selects the data point reuse key:
		// "name" (point name only) or "name_display" (point name + display name).
		PointDedupKey string
		// AssetTypeClientID is stamped on migrated asset type rows.
		AssetTypeClientID string
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from the environment, with a local .env file
// applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Neo4j.URI = getEnv("NEO4J_URI", "bolt://localhost:7687")
	cfg.Neo4j.Username = getEnv("NEO4J_USERNAME", "neo4j")
	cfg.Neo4j.Password = getEnv("NEO4J_PASSWORD", "")

	cfg.Database.Host = getEnv("PG_HOST", "localhost")
	cfg.Database.Port = getEnvInt("PG_PORT", 5432)
	cfg.Database.User = getEnv("PG_USERNAME", "postgres")
	cfg.Database.Password = getEnv("PG_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("PG_DB", "neo4j_migration")
	cfg.Database.SSLMode = getEnv("PG_SSLMODE", "disable")
	cfg.Database.MaxConns = getEnvInt("PG_MAX_CONNS", 10)
	cfg.Database.MaxIdle = getEnvInt("PG_MAX_IDLE", 5)

	cfg.Export.DataDir = getEnv("EXPORT_DATA_DIR", "data")
	cfg.Export.BatchSize = getEnvInt("EXPORT_BATCH_SIZE", 1000)
	cfg.Export.Domain = getEnv("COMMUNITY_DOMAIN", "ecd")
	cfg.Export.ManifestPath = getEnv("EXPORT_MANIFEST", "")
	cfg.Export.RootClientID = getEnv("ROOT_CLIENT_ID", "buildingdemo")

	cfg.Loader.PointDedupKey = getEnv("POINT_DEDUP_KEY", "name")
	cfg.Loader.AssetTypeClientID = getEnv("ASSET_TYPE_CLIENT_ID", "emaar")
	if cfg.Loader.PointDedupKey != "name" && cfg.Loader.PointDedupKey != "name_display" {
		return nil, fmt.Errorf("invalid POINT_DEDUP_KEY %q: must be \"name\" or \"name_display\"", cfg.Loader.PointDedupKey)
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	if cfg.Export.BatchSize <= 0 {
		return nil, fmt.Errorf("invalid EXPORT_BATCH_SIZE %d: must be positive", cfg.Export.BatchSize)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
