// Package pgtest starts a disposable Postgres for integration tests and seeds
// it with domain aggregates.
package pgtest

import (
	"context"
	"database/sql"
	"time"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated Postgres running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	SQL       *sql.DB
	Gorm      *gorm.DB
}

// Start runs postgres:15-alpine and applies the service migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	sqlDB, gormDB, err := postgresadapter.Connect(ctx, dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, SQL: sqlDB, Gorm: gormDB}, nil
}

// Truncate empties every table of the schema.
func (d *Database) Truncate(ctx context.Context) error {
	return d.Gorm.WithContext(ctx).Exec(
		"TRUNCATE TABLE order_items, orders, couriers, customer_addresses, customers, products CASCADE",
	).Error
}

// Terminate closes the pool and removes the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil {
		return nil
	}
	if d.SQL != nil {
		_ = d.SQL.Close()
	}
	if d.Container != nil {
		return d.Container.Terminate(ctx)
	}
	return nil
}
