package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/travelease/callcenter/internal/infrastructure/config"
	"github.com/travelease/callcenter/internal/infrastructure/database"
	"github.com/travelease/callcenter/internal/infrastructure/migration"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/seeds"
	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new SQL migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo agents and customers",
		RunE:  runSeed,
	}
}

func initEnv(connect bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, log, nil
}

// gooseStrategy returns the script based strategy for the configured driver.
// down, status and create only make sense against versioned scripts.
func gooseStrategy(cfg *config.Config) (*migration.GooseStrategy, error) {
	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		return nil, fmt.Errorf("command is only supported for postgres and mysql: %w", err)
	}
	return strategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)

	manager, err := migration.NewManager(env, cfg.Database.Driver)
	if err != nil {
		return err
	}
	if err := manager.Migrate(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	return strategy.Status(database.Get())
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(false)
	if err != nil {
		return err
	}

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(filepath.Join(scriptsDir, cfg.Database.Driver))
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	if err := strategy.Create(dir, name); err != nil {
		return err
	}

	log.Infow("migration created", "name", name, "dir", dir)
	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := seeds.SeedDirectory(database.Get()); err != nil {
		return fmt.Errorf("failed to seed directory: %w", err)
	}

	log.Infow("demo agents and customers seeded")
	return nil
}
