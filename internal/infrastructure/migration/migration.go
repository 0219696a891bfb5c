package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for an environment and driver: versioned
// goose scripts for postgres and mysql outside development, AutoMigrate
// otherwise.
func NewManager(environment, driver string) (*Manager, error) {
	driver = strings.ToLower(driver)
	useScripts := strings.ToLower(environment) != constants.EnvDevelopment &&
		(driver == "postgres" || driver == "mysql")

	if !useScripts {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy()), nil
	}

	strategy, err := NewGooseStrategy(driver)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy), nil
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...any) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
