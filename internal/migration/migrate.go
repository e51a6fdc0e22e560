package migration

import (
	businessdomain "github.com/smallbiznis/voicepost/internal/business/domain"
	imagedomain "github.com/smallbiznis/voicepost/internal/imagegen/domain"
	reviewdomain "github.com/smallbiznis/voicepost/internal/review/domain"
	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run applies the schema for every model. SQLite picks up new columns
// through gorm's migrator, which is all this deployment shape needs.
func Run(db *gorm.DB, log *zap.Logger) error {
	log.Info("running schema migration")
	return db.AutoMigrate(
		&businessdomain.Business{},
		&surveydomain.SurveyDefinition{},
		&surveydomain.SurveyResponse{},
		&reviewdomain.GeneratedCopy{},
		&imagedomain.GeneratedImage{},
	)
}
