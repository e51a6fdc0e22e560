package assets

import "go.uber.org/fx"

var Module = fx.Module("assets",
	fx.Provide(NewStore),
)
