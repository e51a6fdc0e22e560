package db

import (
	"context"

	"github.com/smallbiznis/voicepost/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// inMemoryDSN keeps all connections on one shared database so the pool
// does not hand out empty schemas.
const inMemoryDSN = "file::memory:?cache=shared"

var Module = fx.Module("db",
	fx.Provide(Open),
)

// Open connects to the configured database. Without a DSN it falls back to
// an in-memory store, which is the explicit replacement for running against
// a hosted backend during development.
func Open(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.DatabaseDSN
	if dsn == "" {
		dsn = inMemoryDSN
		log.Named("db").Info("no DATABASE_DSN configured, using in-memory store")
	}

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := conn.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
	}
	return conn, nil
}
