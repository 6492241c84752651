package database

import (
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/katalog/internal/database/books"
)

// Database owns the single connection to the catalog file. It is opened once
// at startup and must be closed on shutdown.
type Database struct {
	DB   *gorm.DB
	Path string
}

// NewDatabase opens (creating if needed) the SQLite file at dbPath and makes
// sure the book table exists.
func NewDatabase(dbPath string, logLevel logger.LogLevel, log *zap.Logger) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := books.NewRepository(db).Initialize(); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to initialize book table: %w", err)
	}

	libVersion, _, _ := sqlite3.Version()
	log.Info("database initialized",
		zap.String("path", dbPath),
		zap.String("sqlite.version", libVersion))

	return &Database{DB: db, Path: dbPath}, nil
}

// SQLDB returns the underlying *sql.DB, e.g. for the session store.
func (d *Database) SQLDB() (*sql.DB, error) {
	return d.DB.DB()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
