package survey

import (
	"github.com/smallbiznis/voicepost/internal/survey/service"
	"go.uber.org/fx"
)

var Module = fx.Module("survey.service",
	fx.Provide(service.NewService),
)
