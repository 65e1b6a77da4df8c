package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/migration"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

var testLogger = logger.NewNopLogger()

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(migration.AutoMigrateModels()...))
	require.NoError(t, database.AutoMigrate(migration.IdentityModels()...))
	return database
}

func setupTestCache(t *testing.T) (*cache.RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewRedisPlanCache(client, "", testLogger), mr
}

// fixture builds the common plan type -> plan -> subscription chain.
type fixture struct {
	db       *gorm.DB
	txMgr    *db.TransactionManager
	planType *plan.PlanType
	plan     *plan.Plan
}

func newFixture(t *testing.T, database *gorm.DB, planCache cache.PlanCache) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{db: database, txMgr: db.NewTransactionManager(database)}

	planType, err := plan.NewPlanType("Empresarial", "Plano para empresas", true)
	require.NoError(t, err)
	require.NoError(t, NewPlanTypeRepository(database, planCache, testLogger).Create(ctx, planType))
	f.planType = planType

	p, err := plan.NewPlan("Empresarial Mensal", "**Completo**", 19900, vo.DurationMonthly, planType.ID())
	require.NoError(t, err)
	require.NoError(t, NewPlanRepository(database, planCache, testLogger).Create(ctx, p))
	f.plan = p
	return f
}

func (f *fixture) subscribe(t *testing.T, companyID uint64, endDate time.Time) *plan.CompanySubscription {
	t.Helper()
	sub, err := plan.NewCompanySubscription(vo.ID(companyID), f.plan.ID(), 19900, time.Now().UTC().AddDate(0, -1, 0), endDate, 0)
	require.NoError(t, err)
	require.NoError(t, NewSubscriptionRepository(f.db, nil, testLogger).Create(context.Background(), sub))
	return sub
}

func nextYear() time.Time {
	return time.Now().UTC().AddDate(1, 0, 0)
}
