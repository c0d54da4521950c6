// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danielhkuo/flight-sentiment/cliparse"
	"github.com/danielhkuo/flight-sentiment/models"
)

const pingTimeout = 5 * time.Second

// Open connects to the database described by cfg and verifies the connection.
func Open(cfg cliparse.Config, opts ...gorm.Option) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	if len(opts) == 0 {
		opts = []gorm.Option{&gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}}
	}

	conn, err := gorm.Open(dialector, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}

	// SQLite allows one writer at a time
	if cfg.DatabaseType == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

func dialectorFor(cfg cliparse.Config) (gorm.Dialector, error) {
	switch cfg.DatabaseType {
	case "", "sqlite":
		return sqlite.Open(cfg.DatabaseURL), nil
	case "postgres":
		return postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.DatabaseURL,
		}), nil
	case "mysql":
		dsn, err := mysqldriver.ParseDSN(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql DSN: %w", err)
		}
		// created_at scans into time.Time
		dsn.ParseTime = true
		return mysql.Open(dsn.FormatDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// CreateSchema creates or updates all tables needed for the application.
// Safe to call multiple times.
func CreateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Review{}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
