package aigen

import "go.uber.org/fx"

var Module = fx.Module("aigen",
	fx.Provide(NewGemini),
	fx.Provide(func() Local { return Local{} }),
)
