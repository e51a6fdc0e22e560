package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/voicepost/internal/aigen"
	"github.com/smallbiznis/voicepost/internal/assets"
	"github.com/smallbiznis/voicepost/internal/business"
	"github.com/smallbiznis/voicepost/internal/clock"
	"github.com/smallbiznis/voicepost/internal/config"
	"github.com/smallbiznis/voicepost/internal/imagegen"
	"github.com/smallbiznis/voicepost/internal/migration"
	"github.com/smallbiznis/voicepost/internal/observability"
	"github.com/smallbiznis/voicepost/internal/poster/raster"
	"github.com/smallbiznis/voicepost/internal/review"
	"github.com/smallbiznis/voicepost/internal/seed"
	"github.com/smallbiznis/voicepost/internal/server"
	"github.com/smallbiznis/voicepost/internal/survey"
	"github.com/smallbiznis/voicepost/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,

		aigen.Module,
		assets.Module,
		raster.Module,

		business.Module,
		survey.Module,
		review.Module,
		imagegen.Module,

		fx.Invoke(func(conn *gorm.DB, log *zap.Logger) error {
			if err := migration.Run(conn, log.Named("migration")); err != nil {
				return err
			}
			return seed.EnsureDemoBusinesses(conn)
		}),

		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
