package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bikeshare-explorer/internal/common/logger"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// driverNames maps configured source names to registered database/sql drivers.
var driverNames = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite",
}

type DB struct {
	conn   *sql.DB
	driver string
	logger logger.Logger
}

func New(ctx context.Context, driver, connStr string, logger logger.Logger) (*DB, error) {
	name, ok := driverNames[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := sql.Open(name, connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// an in-memory sqlite database only exists on the connection that created it
	if name == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("Database connection established", "driver", name)

	return &DB{
		conn:   conn,
		driver: name,
		logger: logger,
	}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

func (db *DB) Driver() string {
	return db.driver
}

// Logger returns the logger instance
func (db *DB) Logger() logger.Logger {
	return db.logger
}
