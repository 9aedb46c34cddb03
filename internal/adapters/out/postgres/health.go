package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// PingChecker reports whether the database answers a ping.
type PingChecker struct {
	db *sql.DB
}

func NewPingChecker(db *sql.DB) *PingChecker {
	return &PingChecker{db: db}
}

func (c *PingChecker) Name() string {
	return "postgres"
}

func (c *PingChecker) Check(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}
