package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"posadmin/m/internal/config"
)

// Connect opens and pings a database using the named driver ("sqlite" or "pgx").
// The caller owns the returned handle and must Close it.
func Connect(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if driver != config.DriverSQLite && driver != config.DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if driver == config.DriverSQLite {
		dsn = withForeignKeys(dsn)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == config.DriverSQLite {
		// SQLite serialises writers; one connection also keeps :memory: databases alive and shared.
		db.SetMaxOpenConns(1)
		return db, nil
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// withForeignKeys adds the foreign_keys pragma to a SQLite DSN that does not set it.
// modernc applies _pragma parameters to every new connection.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// IsPostgres reports whether db talks to PostgreSQL.
func IsPostgres(db *sqlx.DB) bool {
	return db.DriverName() == config.DriverPostgres
}
