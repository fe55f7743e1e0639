// Package repo implements the data persistence layer for medications,
// backed by GORM. This file contains database bootstrapping: driver
// selection, SQLite PRAGMAs, pool tuning and optional query tracing.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// Supported values for Options.Driver.
const (
	DriverSQLite    = "sqlite"
	DriverPostgres  = "postgres"
	DriverMySQL     = "mysql"
	DriverSQLServer = "sqlserver"
)

// Options selects and tunes the backing store.
type Options struct {
	// Driver is one of the Driver* constants. Empty means SQLite.
	Driver string
	// DSN is the file path for SQLite and a driver DSN otherwise.
	DSN string
	// MaxOpenConns caps the pool; values <= 0 default to 10.
	MaxOpenConns int
	// Tracing installs the GORM OpenTelemetry plugin.
	Tracing bool
}

// Open connects to the configured store. Connection failures are reported
// as ErrStorageUnavailable.
func Open(opts Options) (*gorm.DB, error) {
	driver := NormalizeDriver(opts.Driver)

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
		if dir := filepath.Dir(opts.DSN); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
			}
		}
		dialector = sqlite.Open(sqliteDSN(opts.DSN))
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	case DriverMySQL:
		dialector = mysql.Open(opts.DSN)
	case DriverSQLServer:
		dialector = sqlserver.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, err
		}
	}

	if driver == DriverSQLite {
		// The DSN pragmas cover every pooled connection; these cover the first
		// one and persist journal_mode in the file.
		db.Exec("PRAGMA journal_mode=WAL;")
		db.Exec("PRAGMA synchronous=NORMAL;")
		db.Exec("PRAGMA foreign_keys=ON;")
		db.Exec("PRAGMA busy_timeout=5000;")
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(maxOpen)
		sqlDB.SetMaxIdleConns(maxOpen)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database file and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	return Open(Options{Driver: DriverSQLite, DSN: path})
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NormalizeDriver maps driver aliases to the Driver* constants.
func NormalizeDriver(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "", "sqlite", "sqlite3":
		return DriverSQLite
	case "postgres", "postgresql", "pg":
		return DriverPostgres
	case "mysql", "mariadb":
		return DriverMySQL
	case "sqlserver", "mssql":
		return DriverSQLServer
	default:
		return d
	}
}

// sqliteDSN appends connection-level pragmas so foreign keys are enforced
// on every connection in the pool, not only the first.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
