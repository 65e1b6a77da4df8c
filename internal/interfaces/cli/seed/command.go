package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/database"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/repository"
	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/bootstrap"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
	actorID    uint64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load plan types, seat limits and plans from a YAML file",
		Long: `Create the catalog entries of a YAML file in the plan database.
Plan types and plans that already exist by name are skipped, so the
command can be run again after editing the file.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog YAML file (required)")
	cmd.Flags().Uint64Var(&actorID, "actor", 0, "Acting user id recorded on the rows (default: auth.service_actor_id)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}
	catalog, err := Parse(data)
	if err != nil {
		return err
	}

	cfg, log, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	planDB, err := bootstrap.OpenPlan(cfg)
	if err != nil {
		return err
	}
	defer database.CloseAll()

	if actorID == 0 {
		actorID = cfg.Auth.ServiceActorID
	}

	// Invalidate the shared cache so running servers see the new rows
	var planCache cache.PlanCache = cache.NoopPlanCache{}
	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		planCache = cache.NewRedisPlanCache(client, cfg.Cache.KeyPrefix, log)
	}
	txMgr := db.NewTransactionManager(planDB)
	planTypeRepo := repository.NewPlanTypeRepository(planDB, planCache, log)
	planRepo := repository.NewPlanRepository(planDB, planCache, log)
	seatLimitRepo := repository.NewSeatLimitConfigRepository(planDB, planCache, log)

	seeder := NewSeeder(
		usecases.NewManagePlanTypesUseCase(planTypeRepo, planRepo, txMgr, log),
		usecases.NewManagePlansUseCase(planRepo, planTypeRepo, txMgr, log),
		usecases.NewManageSeatLimitsUseCase(seatLimitRepo, planTypeRepo, txMgr, log),
		actorID,
		log,
	)

	res, err := seeder.Apply(context.Background(), catalog)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d plan types, %d seat limits, %d plans (%d skipped)\n",
		res.PlanTypes, res.SeatLimits, res.Plans, res.Skipped)
	return nil
}
