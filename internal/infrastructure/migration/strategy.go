package migration

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/shared/logger"
)

//go:embed scripts/postgres/*.sql scripts/mysql/*.sql
var embeddedScripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB, models ...any) error
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
type GooseStrategy struct {
	dialect string
	scripts fs.FS
	logger  logger.Interface
}

// NewGooseStrategy returns the goose strategy for a driver name: postgres or
// mysql.
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	scripts, err := fs.Sub(embeddedScripts, "scripts/"+driver)
	if err != nil {
		return nil, fmt.Errorf("no migration scripts for driver %q: %w", driver, err)
	}
	if _, err := fs.Stat(scripts, "."); err != nil {
		return nil, fmt.Errorf("no migration scripts for driver %q: %w", driver, err)
	}
	return &GooseStrategy{
		dialect: driver,
		scripts: scripts,
		logger:  logger.NewLogger().With("component", "migration.goose"),
	}, nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(s.scripts)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate applies every pending script. models are ignored; the schema is
// defined by the scripts alone.
func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...any) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	s.logger.Infow("applying migrations", "dialect", s.dialect)
	if err := goose.Up(sqlDB, "."); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	s.logger.Infow("rolling back migrations", "steps", steps)
	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, "."); err != nil {
			s.logger.Errorw("down migration failed", "step", i+1, "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	if err := goose.Status(sqlDB, "."); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new empty SQL migration into dir on the local filesystem.
func (s *GooseStrategy) Create(dir, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created", "dir", dir, "name", name)
	return nil
}
