package raster

import (
	"github.com/smallbiznis/voicepost/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("raster",
	fx.Provide(func(cfg config.Config, log *zap.Logger) *FontSource {
		return NewFontSource(cfg.FontPath, cfg.FontFallbackURL, log)
	}),
	fx.Provide(NewAssetFetcher),
	fx.Provide(NewRasterizer),
)
