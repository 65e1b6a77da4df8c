package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
)

// seedCatalog adds a yearly plan and an inactive type to the fixture, plus
// seat limits for the fixture's type only.
func seedCatalog(t *testing.T, f *fixture, planCache cache.PlanCache) (yearly *plan.Plan, legacy *plan.Plan) {
	t.Helper()
	ctx := context.Background()
	plans := NewPlanRepository(f.db, planCache, testLogger)
	types := NewPlanTypeRepository(f.db, planCache, testLogger)
	limits := NewSeatLimitConfigRepository(f.db, planCache, testLogger)

	yearly, err := plan.NewPlan("Empresarial Anual", "Desconto anual", 199000, vo.DurationYearly, f.planType.ID())
	require.NoError(t, err)
	require.NoError(t, plans.Create(ctx, yearly))

	legacyType, err := plan.NewPlanType("Legado", "", false)
	require.NoError(t, err)
	require.NoError(t, types.Create(ctx, legacyType))
	legacy, err = plan.NewPlan("Antigo", "", 5000, vo.DurationMonthly, legacyType.ID())
	require.NoError(t, err)
	require.NoError(t, plans.Create(ctx, legacy))

	admin, err := plan.NewSeatLimitConfig(f.planType.ID(), vo.ScopeAdmin, 2, 4900)
	require.NoError(t, err)
	require.NoError(t, limits.Create(ctx, admin))
	regular, err := plan.NewSeatLimitConfig(f.planType.ID(), vo.ScopeRegular, 10, 1900)
	require.NoError(t, err)
	require.NoError(t, limits.Create(ctx, regular))
	return yearly, legacy
}

func activeQuery(t *testing.T, params plan.CatalogParams) plan.CatalogQuery {
	t.Helper()
	q, err := plan.NewCatalogQuery(params)
	require.NoError(t, err)
	return q
}

func TestCatalogRepository_List(t *testing.T) {
	ctx := context.Background()
	database := setupTestDB(t)
	f := newFixture(t, database, nil)
	yearly, legacy := seedCatalog(t, f, nil)
	repo := NewCatalogRepository(database, nil, testLogger)

	t.Run("active only by default, sorted by name", func(t *testing.T) {
		plans, total, err := repo.List(ctx, activeQuery(t, plan.CatalogParams{}))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, plans, 2)
		assert.Equal(t, yearly.ID(), plans[0].ID)
		assert.Equal(t, f.plan.ID(), plans[1].ID)

		entry := plans[1]
		assert.Equal(t, "Empresarial", entry.PlanType.TypeName)
		assert.True(t, entry.PlanType.IsActive)
		assert.Equal(t, 2, entry.AdminSeats)
		assert.Equal(t, 10, entry.RegularSeats)
		assert.Equal(t, int64(4900), entry.ExtraAdminPrice)
		assert.Equal(t, int64(1900), entry.ExtraRegularPrice)
		assert.Equal(t, vo.DurationMonthly, entry.Duration)
	})

	t.Run("inactive types without seat limits", func(t *testing.T) {
		inactive := false
		plans, total, err := repo.List(ctx, activeQuery(t, plan.CatalogParams{Active: &inactive}))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, plans, 1)
		assert.Equal(t, legacy.ID(), plans[0].ID)
		assert.Zero(t, plans[0].AdminSeats)
		assert.Zero(t, plans[0].ExtraRegularPrice)
	})

	t.Run("filters", func(t *testing.T) {
		minAmount := int64(100000)
		plans, total, err := repo.List(ctx, activeQuery(t, plan.CatalogParams{
			PlanType:  "empresarial",
			MinAmount: &minAmount,
		}))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, plans, 1)
		assert.Equal(t, yearly.ID(), plans[0].ID)

		plans, _, err = repo.List(ctx, activeQuery(t, plan.CatalogParams{Duration: "monthly"}))
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, f.plan.ID(), plans[0].ID)
	})

	t.Run("price sort and pagination", func(t *testing.T) {
		limit, offset := 1, 1
		plans, total, err := repo.List(ctx, activeQuery(t, plan.CatalogParams{
			Sort:   "price",
			Order:  "desc",
			Limit:  &limit,
			Offset: &offset,
		}))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total, "total ignores pagination")
		require.Len(t, plans, 1)
		assert.Equal(t, f.plan.ID(), plans[0].ID)
	})
}

func TestCatalogRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	database := setupTestDB(t)
	f := newFixture(t, database, nil)
	_, legacy := seedCatalog(t, f, nil)
	repo := NewCatalogRepository(database, nil, testLogger)

	entry, err := repo.GetByID(ctx, legacy.ID())
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Antigo", entry.Name)
	assert.False(t, entry.PlanType.IsActive)

	missing, err := repo.GetByID(ctx, vo.ID(999))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogRepository_CachedPages(t *testing.T) {
	ctx := context.Background()
	database := setupTestDB(t)
	planCache, mr := setupTestCache(t)
	f := newFixture(t, database, planCache)
	seedCatalog(t, f, planCache)
	repo := NewCatalogRepository(database, planCache, testLogger)
	plans := NewPlanRepository(database, planCache, testLogger)

	query := activeQuery(t, plan.CatalogParams{})
	first, _, err := repo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, []string{catalogFingerprint(query)}, mr.HKeys(cache.CatalogKey()))

	again, total, err := repo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, again, len(first))
	assert.Equal(t, first[0].Name, again[0].Name)
	assert.Equal(t, first[1].AdminSeats, again[1].AdminSeats)

	require.NoError(t, f.plan.Update("Empresarial Mensal Plus", "", 24900, vo.DurationMonthly, f.planType.ID()))
	require.NoError(t, plans.Update(ctx, f.plan))
	assert.False(t, mr.Exists(cache.CatalogKey()))

	refreshed, _, err := repo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Empresarial Mensal Plus", refreshed[1].Name)
}
