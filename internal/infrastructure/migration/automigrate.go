package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the persistence models.
// It backs local development and sqlite, where the SQL scripts do not apply.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...any) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}
	s.logger.Infow("auto migrating models", "count", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func AutoMigrateModels() []any {
	return models.All()
}
