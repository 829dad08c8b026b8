package database

import (
	"fmt"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps a gorm connection together with the settings it was opened with.
type DB struct {
	*gorm.DB
	config     models.DatabaseConfig
	driverName string
}

// New opens a connection for the configured driver and verifies it with a ping.
func New(config models.DatabaseConfig) (*DB, error) {
	dialector, driverName, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// The ClickHouse driver has incomplete prepared statement support.
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", driverName, err)
	}

	db := &DB{DB: gormDB, config: config, driverName: driverName}
	db.setConnectionPool()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping %s: %w", driverName, err)
	}
	return db, nil
}

func (db *DB) Close() error {
	if db.DB == nil {
		return nil
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) Ping() error {
	if db.DB == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) DriverName() string {
	return db.driverName
}

// Migrate creates the resolution log table.
func (db *DB) Migrate() error {
	if db.config.Type == models.ClickHouse {
		return db.Exec(clickhouseResolutionTable).Error
	}
	return db.AutoMigrate(&models.ResolutionRecord{})
}

func (db *DB) setConnectionPool() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}

	if db.config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(db.config.MaxOpenConns)
	}
	if db.config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(db.config.MaxIdleConns)
	}
	if db.config.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(db.config.ConnMaxLifetime) * time.Second)
	}
}
