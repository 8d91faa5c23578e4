package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"keyboards-api/internal/config"
	mysqlClient "keyboards-api/internal/platform/mysql"
	postgresClient "keyboards-api/internal/platform/postgres"
	sqliteClient "keyboards-api/internal/platform/sqlite"
)

// Open connects to the relational store selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: newLogger(cfg.Database.Echo)}

	switch cfg.Database.Driver {
	case config.DriverSQLite, "":
		return sqliteClient.New(ctx, cfg.SQLiteDSN(), gormCfg)
	case config.DriverMySQL:
		return mysqlClient.New(ctx, cfg.MySQLDSN(), gormCfg)
	case config.DriverPostgres:
		return postgresClient.New(ctx, cfg.Database.Postgres.DSN, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(echo bool) logger.Interface {
	level := logger.Warn
	if echo {
		level = logger.Info
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
