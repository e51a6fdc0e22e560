package imagegen

import (
	"github.com/smallbiznis/voicepost/internal/imagegen/service"
	"go.uber.org/fx"
)

var Module = fx.Module("imagegen.service",
	fx.Provide(service.NewService),
)
