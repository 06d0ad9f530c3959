// Package migration wires the extraction, staging, mapping, validation and
// load stages into ordered, independently committed steps.
package migration

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/ajithnectar/neo4j-migration-entities/internal/config"
	"github.com/ajithnectar/neo4j-migration-entities/internal/graph"
)

// Deps carries the shared collaborators every step may use.
type Deps struct {
	Config *config.Config
	Logger *zap.Logger
	Graph  *graph.Client
	DB     *sql.DB
}

// Step is one selectable migration step. Run returns a human-readable
// summary line for the operator.
type Step struct {
	Key  string
	Name string
	Run  func(ctx context.Context, deps *Deps) (string, error)
}

// RunSteps executes steps in order. A failing step halts the remaining
// steps in the same invocation; steps already completed stay committed.
func RunSteps(ctx context.Context, deps *Deps, steps []Step) error {
	for _, step := range steps {
		deps.Logger.Info("Running migration step", zap.String("step", step.Name))
		fmt.Printf("\n%s\n", banner)
		fmt.Printf("Running: %s\n", step.Name)
		fmt.Printf("%s\n\n", banner)

		summary, err := step.Run(ctx, deps)
		if err != nil {
			deps.Logger.Error("Migration step failed",
				zap.String("step", step.Name),
				zap.Error(err),
			)
			fmt.Printf("\n✗ %s failed: %v\n", step.Name, err)
			return fmt.Errorf("step %q failed: %w", step.Name, err)
		}

		deps.Logger.Info("Migration step completed", zap.String("step", step.Name))
		if summary != "" {
			fmt.Printf("  %s\n", summary)
		}
		fmt.Printf("\n✓ %s completed successfully\n", step.Name)
	}
	return nil
}

const banner = "=================================================="
