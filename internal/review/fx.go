package review

import (
	"github.com/smallbiznis/voicepost/internal/review/service"
	"go.uber.org/fx"
)

var Module = fx.Module("review.service",
	fx.Provide(service.NewService),
)
