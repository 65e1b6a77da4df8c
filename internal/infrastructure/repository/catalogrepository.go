package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

const catalogSelect = `p.plan_id AS plan_id, p.plan_name AS plan_name, p.description AS description,
p.default_amount AS default_amount, p.plan_duration AS plan_duration, p.created_at AS created_at,
pt.plan_type_id AS plan_type_id, pt.type_name AS type_name, pt.description AS type_description, pt.is_active AS type_is_active,
put_admin.number_of_users AS admin_seats, put_admin.extra_user_price AS extra_admin_price,
put_regular.number_of_users AS regular_seats, put_regular.extra_user_price AS extra_regular_price`

var catalogSortColumns = map[plan.CatalogSort]string{
	plan.SortByPrice:     "p.default_amount",
	plan.SortByName:      "p.plan_name",
	plan.SortByCreatedAt: "p.created_at",
}

// catalogRow is one plan joined with its type and both seat limit configs.
type catalogRow struct {
	PlanID            uint64
	PlanName          string
	Description       string
	DefaultAmount     int64
	PlanDuration      string
	CreatedAt         time.Time
	PlanTypeID        uint64
	TypeName          string
	TypeDescription   string
	TypeIsActive      bool
	AdminSeats        *int
	ExtraAdminPrice   *int64
	RegularSeats      *int
	ExtraRegularPrice *int64
}

type catalogPage struct {
	Rows  []catalogRow
	Total int64
}

// CatalogRepositoryImpl reads the denormalized public catalog. Result pages
// are cached as fields of the plans:catalog hash, so one catalog event drops
// every cached page.
type CatalogRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	logger logger.Interface
}

func NewCatalogRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		cache:  planCache,
		logger: logger,
	}
}

func (r *CatalogRepositoryImpl) List(ctx context.Context, query plan.CatalogQuery) ([]*plan.PublicPlan, int64, error) {
	field := catalogFingerprint(query)
	if r.cache != nil {
		var cached catalogPage
		if hit, err := r.cache.GetField(ctx, cache.CatalogKey(), field, &cached); err == nil && hit {
			return toPublicPlans(cached.Rows), cached.Total, nil
		}
	}

	var page catalogPage
	if err := r.filtered(ctx, query).Count(&page.Total).Error; err != nil {
		r.logger.Errorw("failed to count catalog plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count catalog plans: %w", err)
	}

	column, ok := catalogSortColumns[query.Sort]
	if !ok {
		column = catalogSortColumns[plan.SortByCreatedAt]
	}
	err := r.filtered(ctx, query).
		Select(catalogSelect).
		Scopes(db.OrderBy(column, query.Desc), db.OrderBy("p.plan_id", false), db.Paginate(query.Limit, query.Offset)).
		Scan(&page.Rows).Error
	if err != nil {
		r.logger.Errorw("failed to list catalog plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list catalog plans: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.SetField(ctx, cache.CatalogKey(), field, page, cache.CatalogTTL); err != nil {
			r.logger.Warnw("failed to cache catalog page", "error", err)
		}
	}
	return toPublicPlans(page.Rows), page.Total, nil
}

func (r *CatalogRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.PublicPlan, error) {
	var row catalogRow
	err := r.base(ctx).
		Select(catalogSelect).
		Where("p.plan_id = ?", id.Uint64()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get catalog plan", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get catalog plan: %w", err)
	}

	return row.toPublicPlan(), nil
}

func (r *CatalogRepositoryImpl) base(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table(constants.TablePlans+" AS p").
		Joins("INNER JOIN "+constants.TablePlanTypes+" pt ON pt.plan_type_id = p.plan_type_id").
		Joins("LEFT JOIN "+constants.TableSeatLimitConfigs+" put_admin ON put_admin.plan_type_id = p.plan_type_id AND put_admin.admin = ?", true).
		Joins("LEFT JOIN "+constants.TableSeatLimitConfigs+" put_regular ON put_regular.plan_type_id = p.plan_type_id AND put_regular.admin = ?", false)
}

func (r *CatalogRepositoryImpl) filtered(ctx context.Context, query plan.CatalogQuery) *gorm.DB {
	tx := r.base(ctx)
	if query.Active != nil {
		tx = tx.Where("pt.is_active = ?", *query.Active)
	}
	if query.PlanType != "" {
		tx = tx.Where("LOWER(pt.type_name) = LOWER(?)", query.PlanType)
	}
	if query.Duration != "" {
		tx = tx.Where("p.plan_duration = ?", query.Duration.String())
	}
	if query.MinAmount != nil {
		tx = tx.Where("p.default_amount >= ?", *query.MinAmount)
	}
	if query.MaxAmount != nil {
		tx = tx.Where("p.default_amount <= ?", *query.MaxAmount)
	}
	return tx
}

// catalogFingerprint identifies a normalized query within the catalog hash.
func catalogFingerprint(q plan.CatalogQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "l=%d|o=%d|s=%s|desc=%t", q.Limit, q.Offset, q.Sort, q.Desc)
	if q.Active != nil {
		fmt.Fprintf(&b, "|a=%t", *q.Active)
	}
	if q.PlanType != "" {
		fmt.Fprintf(&b, "|t=%s", strings.ToLower(q.PlanType))
	}
	if q.Duration != "" {
		fmt.Fprintf(&b, "|d=%s", q.Duration)
	}
	if q.MinAmount != nil {
		fmt.Fprintf(&b, "|min=%d", *q.MinAmount)
	}
	if q.MaxAmount != nil {
		fmt.Fprintf(&b, "|max=%d", *q.MaxAmount)
	}
	return b.String()
}

func toPublicPlans(rows []catalogRow) []*plan.PublicPlan {
	plans := make([]*plan.PublicPlan, len(rows))
	for i := range rows {
		plans[i] = rows[i].toPublicPlan()
	}
	return plans
}

func (row *catalogRow) toPublicPlan() *plan.PublicPlan {
	return &plan.PublicPlan{
		ID:            vo.ID(row.PlanID),
		Name:          row.PlanName,
		Description:   row.Description,
		DefaultAmount: row.DefaultAmount,
		Duration:      vo.Duration(row.PlanDuration),
		PlanType: plan.PublicPlanType{
			ID:          vo.ID(row.PlanTypeID),
			TypeName:    row.TypeName,
			Description: row.TypeDescription,
			IsActive:    row.TypeIsActive,
		},
		AdminSeats:        valueOrZero(row.AdminSeats),
		RegularSeats:      valueOrZero(row.RegularSeats),
		ExtraAdminPrice:   valueOrZero(row.ExtraAdminPrice),
		ExtraRegularPrice: valueOrZero(row.ExtraRegularPrice),
		CreatedAt:         row.CreatedAt,
	}
}

func valueOrZero[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
