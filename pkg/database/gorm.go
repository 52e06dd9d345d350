package database

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig bounds the connection pool. Zero fields keep the defaults.
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string // silent, error, warn or info
}

var defaultPool = PoolConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    50,
	ConnMaxLifetime: time.Hour,
	LogLevel:        "warn",
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func newLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func (p PoolConfig) withDefaults() PoolConfig {
	if p.MaxIdleConns <= 0 {
		p.MaxIdleConns = defaultPool.MaxIdleConns
	}
	if p.MaxOpenConns <= 0 {
		p.MaxOpenConns = defaultPool.MaxOpenConns
	}
	if p.ConnMaxLifetime <= 0 {
		p.ConnMaxLifetime = defaultPool.ConnMaxLifetime
	}
	if p.LogLevel == "" {
		p.LogLevel = defaultPool.LogLevel
	}
	return p
}

// NewGormDBFromDSN opens a Postgres connection. An optional PoolConfig
// overrides the pool defaults.
func NewGormDBFromDSN(dsn string, pool ...PoolConfig) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database: empty DSN")
	}

	cfg := defaultPool
	if len(pool) > 0 {
		cfg = pool[0].withDefaults()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
