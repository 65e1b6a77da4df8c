package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
)

// invalidate drops the cached reads made stale by event once the
// surrounding transaction commits.
func invalidate(ctx context.Context, c cache.PlanCache, event cache.Event, scope cache.EventScope) {
	if c == nil {
		return
	}
	db.AfterCommit(ctx, func(ctx context.Context) {
		c.Invalidate(ctx, event, scope)
	})
}

// companyOf returns the company owning a subscription, zero when the
// subscription does not exist.
func companyOf(tx *gorm.DB, subscriptionID uint64) (uint64, error) {
	var ids []uint64
	err := tx.Model(&models.CompanyPlanModel{}).
		Where("company_plan_id = ?", subscriptionID).
		Limit(1).
		Pluck("company_id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("failed to resolve subscription company: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

// readThrough serves key from the cache outside transactions and fills it
// from load on a miss. Cache failures degrade to a storage read.
func readThrough[T any](ctx context.Context, c cache.PlanCache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if c == nil || db.InTransaction(ctx) {
		return load()
	}

	var cached T
	if hit, err := c.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	_ = c.Set(ctx, key, value, ttl)
	return value, nil
}
