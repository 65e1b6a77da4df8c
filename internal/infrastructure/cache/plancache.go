package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// Event names a write on the plan database that makes cached reads stale.
type Event string

const (
	EventPlanCreated     Event = "plan.created"
	EventPlanUpdated     Event = "plan.updated"
	EventPlanDeleted     Event = "plan.deleted"
	EventPlanTypeUpdated Event = "plan_type.updated"

	EventSeatLimitCreated Event = "plan_user_type.created"
	EventSeatLimitUpdated Event = "plan_user_type.updated"
	EventSeatLimitDeleted Event = "plan_user_type.deleted"

	EventSubscriptionCreated       Event = "company_plan.created"
	EventSubscriptionUpdated       Event = "company_plan.updated"
	EventSubscriptionStatusChanged Event = "company_plan.status_changed"

	EventHistoryCreated Event = "company_plan_history.created"

	EventSeatBulkInsert Event = "company_plan_usage.bulk_insert"
	EventSeatCreated    Event = "company_plan_usage.created"
	EventSeatUpdated    Event = "company_plan_usage.updated"
	EventSeatDeleted    Event = "company_plan_usage.deleted"

	EventCancellationCreated       Event = "plan_cancellations.created"
	EventCancellationStatusChanged Event = "plan_cancellations.status_changed"

	EventPlanReportCreated Event = "plan_reports.created"
	EventPlanReportUpdated Event = "plan_reports.updated"
	EventPlanReportDeleted Event = "plan_reports.deleted"
)

// EventScope carries the identifiers an event's keys are built from.
type EventScope struct {
	CompanyID  uint64
	PlanTypeID uint64
}

// TTLs of the keys this service populates. The recent history, usage
// metrics and cancellations keys are only invalidated here.
const (
	CatalogTTL          = 4 * time.Hour
	ActivePlanTTL       = 5 * time.Minute
	UserConfigsTTL      = 2 * time.Hour
	AvailableReportsTTL = 6 * time.Hour

	nullMarkerTTL = time.Minute
	ttlJitter     = 0.1
)

func CatalogKey() string {
	return "plans:catalog"
}

func ActivePlanKey(companyID uint64) string {
	return fmt.Sprintf("company:%d:active_plan", companyID)
}

func UserConfigsKey(planTypeID uint64) string {
	return fmt.Sprintf("plan_type:%d:user_configs", planTypeID)
}

func RecentHistoryKey(companyID uint64) string {
	return fmt.Sprintf("company:%d:recent_history", companyID)
}

func UsageMetricsKey(companyID uint64) string {
	return fmt.Sprintf("company:%d:usage_metrics", companyID)
}

func CancellationsKey(companyID uint64) string {
	return fmt.Sprintf("company:%d:cancellations", companyID)
}

func AvailableReportsKey(planTypeID uint64) string {
	return fmt.Sprintf("plan:%d:available_reports", planTypeID)
}

// KeysFor returns the keys an event invalidates. Unknown events and scopes
// missing the required identifier yield no keys.
func KeysFor(event Event, scope EventScope) []string {
	var keys []string
	company := func(fns ...func(uint64) string) {
		if scope.CompanyID == 0 {
			return
		}
		for _, fn := range fns {
			keys = append(keys, fn(scope.CompanyID))
		}
	}

	switch event {
	case EventPlanCreated, EventPlanUpdated, EventPlanDeleted, EventPlanTypeUpdated:
		keys = append(keys, CatalogKey())
	case EventSeatLimitCreated, EventSeatLimitUpdated, EventSeatLimitDeleted:
		if scope.PlanTypeID != 0 {
			keys = append(keys, UserConfigsKey(scope.PlanTypeID))
		}
		keys = append(keys, CatalogKey())
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionStatusChanged:
		company(ActivePlanKey, UsageMetricsKey)
	case EventHistoryCreated:
		company(RecentHistoryKey)
	case EventSeatBulkInsert, EventSeatCreated, EventSeatUpdated, EventSeatDeleted:
		company(UsageMetricsKey)
	case EventCancellationCreated, EventCancellationStatusChanged:
		company(CancellationsKey, ActivePlanKey)
	case EventPlanReportCreated, EventPlanReportUpdated, EventPlanReportDeleted:
		if scope.PlanTypeID != 0 {
			keys = append(keys, AvailableReportsKey(scope.PlanTypeID))
		}
	}
	return keys
}

// PlanCache is the read-through cache of the plan database. Values are JSON.
// Get and GetField report whether the key was present; a stored JSON null
// is a hit that decodes to the zero value (not-found marker).
type PlanCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// SetNullMarker caches a short-lived "does not exist" result.
	SetNullMarker(ctx context.Context, key string) error
	GetField(ctx context.Context, key, field string, dst any) (bool, error)
	SetField(ctx context.Context, key, field string, value any, ttl time.Duration) error
	// Invalidate deletes the keys of an event. Failures are logged, never returned.
	Invalidate(ctx context.Context, event Event, scope EventScope)
}

// RedisPlanCache implements PlanCache on Redis strings and hashes.
type RedisPlanCache struct {
	client *redis.Client
	prefix string
	logger logger.Interface
}

func NewRedisPlanCache(client *redis.Client, prefix string, logger logger.Interface) *RedisPlanCache {
	return &RedisPlanCache{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (c *RedisPlanCache) key(k string) string {
	return c.prefix + k
}

func (c *RedisPlanCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisPlanCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), data, withJitter(ttl)).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

func (c *RedisPlanCache) SetNullMarker(ctx context.Context, key string) error {
	if err := c.client.Set(ctx, c.key(key), "null", nullMarkerTTL).Err(); err != nil {
		return fmt.Errorf("failed to set null marker %s: %w", key, err)
	}
	return nil
}

func (c *RedisPlanCache) GetField(ctx context.Context, key, field string, dst any) (bool, error) {
	data, err := c.client.HGet(ctx, c.key(key), field).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache field %s/%s: %w", key, field, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cache field %s/%s: %w", key, field, err)
	}
	return true, nil
}

// SetField stores one field of a hash key. The TTL applies to the whole hash
// and is only set when the hash has none, so one invalidation drops every field.
func (c *RedisPlanCache) SetField(ctx context.Context, key, field string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache field %s/%s: %w", key, field, err)
	}

	k := c.key(key)
	if err := c.client.HSet(ctx, k, field, data).Err(); err != nil {
		return fmt.Errorf("failed to write cache field %s/%s: %w", key, field, err)
	}

	// TTL reports -1 for a key without expiry
	remaining, err := c.client.TTL(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("failed to read cache ttl %s: %w", key, err)
	}
	if remaining < 0 {
		if err := c.client.Expire(ctx, k, withJitter(ttl)).Err(); err != nil {
			return fmt.Errorf("failed to set cache ttl %s: %w", key, err)
		}
	}
	return nil
}

func (c *RedisPlanCache) Invalidate(ctx context.Context, event Event, scope EventScope) {
	keys := KeysFor(event, scope)
	if len(keys) == 0 {
		return
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.logger.Warnw("failed to invalidate cache",
			"error", err,
			"event", event,
			"keys", keys,
		)
		return
	}

	c.logger.Debugw("cache invalidated", "event", event, "keys", keys)
}

// withJitter spreads expiry of keys written together (anti-stampede).
func withJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	spread := int64(float64(ttl) * ttlJitter)
	if spread <= 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Int64N(spread))
}

// NoopPlanCache is used when caching is disabled: every read misses.
type NoopPlanCache struct{}

func (NoopPlanCache) Get(context.Context, string, any) (bool, error)                     { return false, nil }
func (NoopPlanCache) Set(context.Context, string, any, time.Duration) error              { return nil }
func (NoopPlanCache) SetNullMarker(context.Context, string) error                        { return nil }
func (NoopPlanCache) GetField(context.Context, string, string, any) (bool, error)        { return false, nil }
func (NoopPlanCache) SetField(context.Context, string, string, any, time.Duration) error { return nil }
func (NoopPlanCache) Invalidate(context.Context, Event, EventScope)                      {}
