package db

import (
	"fmt"
	stdlog "log"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/inkhouse/ecommerce-backend/internal/config"
	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: NewLogger(log, cfg.IsDevelopment()),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.RedactedDSN(), err)
	}
	return gdb, nil
}

// NewLogger routes gorm's log output into zerolog. SQL statements are only
// traced in development. Slow queries and errors are always logged.
func NewLogger(log zerolog.Logger, verbose bool) gormlogger.Interface {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}

	w := stdlog.New(log.With().Str("component", "gorm").Logger(), "", 0)
	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate は users / products / orders を作成・更新する。
// orders は users を参照するので users を先に作る。
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
