// Package postgres manages the PostgreSQL connection pool and schema.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// ConnectionManager owns the database handle and its pool limits. It is
// constructed once in main and handed to the services; nothing else opens
// connections.
type ConnectionManager struct {
	db     *sql.DB
	config ConnectionConfig
}

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	DSN         string
	MaxConns    int
	MinConns    int
	Timeout     time.Duration
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

// NewConnectionManager opens the database with bounded pool settings and
// verifies connectivity before returning.
func NewConnectionManager(config ConnectionConfig) (*ConnectionManager, error) {
	db, err := sql.Open("postgres", config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(config.MaxConns)
	db.SetMaxIdleConns(config.MinConns)
	db.SetConnMaxLifetime(config.MaxLifetime)
	db.SetConnMaxIdleTime(config.MaxIdleTime)

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &ConnectionManager{db: db, config: config}, nil
}

// DB returns the pooled database handle
func (cm *ConnectionManager) DB() *sql.DB {
	return cm.db
}

// HealthCheck verifies database connectivity
func (cm *ConnectionManager) HealthCheck(ctx context.Context) error {
	if err := cm.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}
	return nil
}

// Stats returns connection pool statistics
func (cm *ConnectionManager) Stats() sql.DBStats {
	return cm.db.Stats()
}

// Close closes the database connection pool
func (cm *ConnectionManager) Close() error {
	if err := cm.db.Close(); err != nil {
		return fmt.Errorf("database close error: %w", err)
	}
	return nil
}
