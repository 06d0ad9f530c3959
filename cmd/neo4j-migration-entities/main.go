package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/config"
	"github.com/ajithnectar/neo4j-migration-entities/internal/database"
	"github.com/ajithnectar/neo4j-migration-entities/internal/graph"
	"github.com/ajithnectar/neo4j-migration-entities/internal/logger"
	"github.com/ajithnectar/neo4j-migration-entities/internal/migration"
)

func main() {
	migrationKey := flag.String("migration", "",
		"optional: run a specific migration without the interactive prompt "+
			"(type, asset-type, fetch-asset-types, export, client, community, domain, staged, all)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "neo4j-migration-entities")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	selected, err := selectSteps(*migrationKey)
	if err != nil {
		zapLogger.Fatal("Invalid migration selection", zap.Error(err))
	}
	names := make([]string, 0, len(selected))
	for _, step := range selected {
		names = append(names, step.Name)
	}
	zapLogger.Info("Starting migration run",
		zap.String("domain", cfg.Export.Domain),
		zap.Strings("steps", names),
	)
	fmt.Printf("\n→ Running: %s\n", strings.Join(names, ", "))

	graphClient, err := graph.NewClient(ctx, &cfg.Neo4j, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	defer func() {
		if err := graphClient.Close(ctx); err != nil {
			zapLogger.Error("Error closing Neo4j driver", zap.Error(err))
		}
	}()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer database.Close(db)

	deps := &migration.Deps{
		Config: cfg,
		Logger: zapLogger,
		Graph:  graphClient,
		DB:     db,
	}

	if err := migration.RunSteps(ctx, deps, selected); err != nil {
		zapLogger.Error("Migration run failed", zap.Error(err))
		os.Exit(1)
	}

	zapLogger.Info("All migrations finished successfully")
	fmt.Println("\n==================================================")
	fmt.Println("✓ ALL MIGRATIONS COMPLETED SUCCESSFULLY")
	fmt.Println("==================================================")
}

// selectSteps resolves the steps to run from the -migration flag, falling
// back to the interactive menu when the flag is absent.
func selectSteps(key string) ([]migration.Step, error) {
	if key == "" {
		return showMenu(), nil
	}
	if key == "all" {
		return migration.Steps(), nil
	}
	step, ok := migration.StepByKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown migration %q", key)
	}
	return []migration.Step{step}, nil
}

func showMenu() []migration.Step {
	steps := migration.Steps()
	fmt.Println("\n==================================================")
	fmt.Println("MIGRATION MENU")
	fmt.Println("==================================================")
	for i, step := range steps {
		fmt.Printf("%d. %s\n", i+1, step.Name)
	}
	fmt.Printf("%d. Run all migrations\n", len(steps)+1)
	fmt.Println("==================================================")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter option number: ")
		if !scanner.Scan() {
			os.Exit(0)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			if choice == len(steps)+1 {
				return steps
			}
			if choice >= 1 && choice <= len(steps) {
				return []migration.Step{steps[choice-1]}
			}
		}
		fmt.Println("Invalid choice. Please try again.")
	}
}
