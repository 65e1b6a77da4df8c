package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/database"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/migration"
	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/GraziArcH/domain-sales/internal/interfaces/http"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/version"
)

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the domain sales HTTP server: catalog, subscriptions, seats and identity integration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations on both databases before serving")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	log.Infow("starting server",
		"environment", env,
		"version", version.Current,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	planDB, err := bootstrap.OpenPlan(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.CloseAll(); err != nil {
			log.Errorw("failed to close databases", "error", err)
		}
	}()
	identityDB, err := bootstrap.OpenIdentity(cfg)
	if err != nil {
		return err
	}

	if err := handleMigrations(log, planDB, identityDB); err != nil {
		return err
	}

	container, err := httpRouter.NewContainer(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	container.SetupRoutes()
	container.StartScheduler()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}
	if err := container.Shutdown(ctx); err != nil {
		log.Errorw("failed to release resources", "error", err)
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(log logger.Interface, planDB, identityDB *gorm.DB) error {
	plan := migration.NewPlanManager(planDB)
	identity := migration.NewIdentityManager(identityDB)

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := plan.Migrate(planDB); err != nil {
			return fmt.Errorf("plan auto-migration failed: %w", err)
		}
		if err := identity.Migrate(identityDB); err != nil {
			return fmt.Errorf("identity auto-migration failed: %w", err)
		}
		return nil
	}

	for name, check := range map[string]struct {
		manager *migration.Manager
		db      *gorm.DB
	}{
		database.Plan:     {plan, planDB},
		database.Identity: {identity, identityDB},
	} {
		v, dirty, err := check.manager.GetStrategy().GetVersion(check.db)
		if err != nil {
			log.Warnw("failed to check migration status", "database", name, "error", err)
			continue
		}
		log.Infow("current migration version", "database", name, "version", v, "dirty", dirty)
	}
	return nil
}
