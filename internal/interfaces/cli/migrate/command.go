package migrate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/config"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/database"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/migration"
	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/bootstrap"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
	version    int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long: `Manage migrations of the plan database (goose) and, under "identity",
of the identity database (golang-migrate).`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newIdentityCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending plan database migrations",
		RunE:  withPlanDB(runUp),
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback plan database migrations",
		RunE:  withPlanDB(runDown),
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show plan database migration status",
		RunE:  withPlanDB(runStatus),
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new plan database migration",
		RunE:  runCreate,
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newIdentityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Identity database migrations",
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Rollback identity database migrations",
		RunE:  withIdentityDB(runIdentityDown),
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	force := &cobra.Command{
		Use:   "force",
		Short: "Set the identity migration version and clear the dirty flag",
		RunE:  withIdentityDB(runIdentityForce),
	}
	force.Flags().IntVar(&version, "version", 0, "Version to force (required)")
	_ = force.MarkFlagRequired("version")

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a new identity migration file pair",
		RunE:  runIdentityCreate,
	}
	create.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Run all pending identity database migrations",
			RunE:  withIdentityDB(runIdentityUp),
		},
		down,
		&cobra.Command{
			Use:   "version",
			Short: "Show the identity database migration version",
			RunE:  withIdentityDB(runIdentityVersion),
		},
		force,
		create,
	)
	return cmd
}

type dbRunner func(log logger.Interface, db *gorm.DB) error

func withPlanDB(fn dbRunner) func(*cobra.Command, []string) error {
	return withDB(bootstrap.OpenPlan, fn)
}

func withIdentityDB(fn dbRunner) func(*cobra.Command, []string) error {
	return withDB(bootstrap.OpenIdentity, fn)
}

func withDB(open func(*config.Config) (*gorm.DB, error), fn dbRunner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap.Load(env, configPath)
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := open(cfg)
		if err != nil {
			return err
		}
		defer database.CloseAll()

		return fn(log, db)
	}
}

func runUp(log logger.Interface, db *gorm.DB) error {
	log.Infow("running up migrations", "environment", env, "database", database.Plan)
	return migration.NewPlanManager(db).Migrate(db)
}

func runDown(log logger.Interface, db *gorm.DB) error {
	log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy := migration.NewPlanManager(db).GetStrategy()
	if err := strategy.MigrateDown(db, steps); err != nil {
		if errors.Is(err, migration.ErrUnsupported) {
			return fmt.Errorf("down migration is not supported by %s", strategy.GetName())
		}
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(log logger.Interface, db *gorm.DB) error {
	gooseStrategy, ok := migration.NewPlanManager(db).GetStrategy().(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("status check is only supported with goose strategy")
	}

	v, _, err := gooseStrategy.GetVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", v)

	if err := gooseStrategy.Status(db); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	strategy := migration.NewGooseStrategy(migration.PlanDatabase, cfg.Database.Driver)
	if err := strategy.Create(migration.SourceRoot, name); err != nil {
		return err
	}

	log.Infow("migration created successfully", "name", name, "dialect", cfg.Database.Driver)
	fmt.Printf("Migration '%s' created\n", name)
	return nil
}

func runIdentityUp(log logger.Interface, db *gorm.DB) error {
	log.Infow("running up migrations", "environment", env, "database", database.Identity)
	return migration.NewIdentityManager(db).Migrate(db)
}

func runIdentityDown(log logger.Interface, db *gorm.DB) error {
	log.Infow("running down migrations", "environment", env, "database", database.Identity, "steps", steps)
	if err := migration.NewIdentityManager(db).GetStrategy().MigrateDown(db, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}
	return nil
}

func runIdentityVersion(_ logger.Interface, db *gorm.DB) error {
	v, dirty, err := migration.NewIdentityManager(db).GetStrategy().GetVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	fmt.Printf("Identity migration version: %d (dirty: %t)\n", v, dirty)
	return nil
}

func runIdentityForce(_ logger.Interface, db *gorm.DB) error {
	strategy, ok := migration.NewIdentityManager(db).GetStrategy().(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("force is only supported with golang-migrate strategy")
	}
	return strategy.Force(db, version)
}

func runIdentityCreate(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	up, down, err := migration.NewGenerator(migration.SourceRoot, cfg.IdentityDatabase.Driver).CreateMigration(name)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\nCreated %s\n", up, down)
	return nil
}
