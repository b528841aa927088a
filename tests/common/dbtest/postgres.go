package dbtest

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// StartPostgres runs a throwaway Postgres with the project schema applied.
// migrationsDir is relative to the calling test package.
func StartPostgres(ctx context.Context, migrationsDir string) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			migrationsDir+"/01_users.up.sql",
			migrationsDir+"/02_products.up.sql",
			migrationsDir+"/03_product_price_tiers.up.sql",
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}
