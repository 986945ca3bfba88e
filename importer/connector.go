// Package importer populates a local dbm table from a live MySQL or
// PostgreSQL database (§4.16), grounded in db.ConnectionManager and
// db.SchemaManager.
package importer

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// Dialect names a source SQL dialect understood by Import.
type Dialect string

const (
	MySQL      Dialect = "MYSQL"
	PostgreSQL Dialect = "POSTGRES"
)

// ParseDialect maps a dialect keyword (case-insensitive) to a
// Dialect. ok is false for an unrecognized keyword.
func ParseDialect(name string) (Dialect, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "MYSQL":
		return MySQL, true
	case "POSTGRES", "POSTGRESQL":
		return PostgreSQL, true
	default:
		return "", false
	}
}

// driverName returns the database/sql driver name registered for d by
// this package's blank imports.
func (d Dialect) driverName() (string, error) {
	switch d {
	case MySQL:
		return "mysql", nil
	case PostgreSQL:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unknown dialect %q", d)
	}
}

// connect opens a *sql.DB for dsn under d's driver. The connection is
// the caller's to close — opened and closed within a single db_exec
// call, never retained between calls (§5).
func connect(d Dialect, dsn string) (*sql.DB, error) {
	driver, err := d.driverName()
	if err != nil {
		return nil, err
	}
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", driver, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unreachable %s database: %w", driver, err)
	}
	return conn, nil
}
