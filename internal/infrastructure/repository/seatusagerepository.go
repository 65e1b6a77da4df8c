package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/mappers"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

const seatBatchSize = 200

// SeatUsageRepositoryImpl persists company_plan_usage rows. Seat counts are
// never cached: admission counts under the subscription row lock.
type SeatUsageRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.SeatUsageMapper
	logger logger.Interface
}

func NewSeatUsageRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.SeatUsageRepository {
	return &SeatUsageRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewSeatUsageMapper(),
		logger: logger,
	}
}

func (r *SeatUsageRepositoryImpl) Create(ctx context.Context, seat *plan.SeatUsage) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(seat)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create seat", "error", err,
			"subscription_id", model.SubscriptionID,
			"user_id", model.UserID,
		)
		return fmt.Errorf("failed to create seat: %w", err)
	}

	seat.SetID(vo.ID(model.ID))
	r.emit(ctx, tx, cache.EventSeatCreated, model.SubscriptionID)

	r.logger.Infow("seat created successfully",
		"seat_id", model.ID,
		"subscription_id", model.SubscriptionID,
		"user_id", model.UserID,
		"admin", model.Admin,
	)
	return nil
}

func (r *SeatUsageRepositoryImpl) BulkCreate(ctx context.Context, seats []*plan.SeatUsage) error {
	if len(seats) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	seatModels := make([]*models.SeatUsageModel, len(seats))
	for i, seat := range seats {
		seatModels[i] = r.mapper.ToModel(seat)
	}

	if err := tx.CreateInBatches(seatModels, seatBatchSize).Error; err != nil {
		r.logger.Errorw("failed to bulk create seats", "error", err, "count", len(seats))
		return fmt.Errorf("failed to bulk create seats: %w", err)
	}

	subscriptions := make(map[uint64]struct{})
	for i, model := range seatModels {
		seats[i].SetID(vo.ID(model.ID))
		subscriptions[model.SubscriptionID] = struct{}{}
	}
	for subscriptionID := range subscriptions {
		r.emit(ctx, tx, cache.EventSeatBulkInsert, subscriptionID)
	}

	r.logger.Infow("seats created successfully", "count", len(seats))
	return nil
}

func (r *SeatUsageRepositoryImpl) GetBySubscriptionAndUser(ctx context.Context, subscriptionID, userID vo.ID) (*plan.SeatUsage, error) {
	var model models.SeatUsageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_plan_id = ? AND user_id = ?", subscriptionID.Uint64(), userID.Uint64()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get seat", "error", err,
			"subscription_id", subscriptionID,
			"user_id", userID,
		)
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SeatUsageRepositoryImpl) ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*plan.SeatUsage, error) {
	var seatModels []*models.SeatUsageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_plan_id = ?", subscriptionID.Uint64()).
		Order("usage_id ASC").
		Find(&seatModels).Error
	if err != nil {
		r.logger.Errorw("failed to list seats", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	return r.mapper.ToEntities(seatModels)
}

func (r *SeatUsageRepositoryImpl) CountByScope(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (int, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SeatUsageModel{}).
		Where("company_plan_id = ? AND admin = ?", subscriptionID.Uint64(), scope.IsAdmin()).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count seats", "error", err, "subscription_id", subscriptionID, "scope", scope)
		return 0, fmt.Errorf("failed to count seats: %w", err)
	}
	return int(count), nil
}

type scopeCount struct {
	Admin bool
	Total int64
}

func (r *SeatUsageRepositoryImpl) CountAll(ctx context.Context, subscriptionID vo.ID) (map[vo.SeatScope]int, error) {
	var rows []scopeCount
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SeatUsageModel{}).
		Select("admin, COUNT(*) AS total").
		Where("company_plan_id = ?", subscriptionID.Uint64()).
		Group("admin").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count seats by scope", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to count seats by scope: %w", err)
	}

	counts := make(map[vo.SeatScope]int, len(vo.AllScopes))
	for _, scope := range vo.AllScopes {
		counts[scope] = 0
	}
	for _, row := range rows {
		counts[vo.ScopeFromAdmin(row.Admin)] = int(row.Total)
	}
	return counts, nil
}

func (r *SeatUsageRepositoryImpl) Update(ctx context.Context, seat *plan.SeatUsage) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(seat)
	result := tx.Model(&models.SeatUsageModel{}).
		Where("usage_id = ?", model.ID).
		Updates(map[string]any{
			"admin":      model.Admin,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update seat", "error", result.Error, "seat_id", model.ID)
		return fmt.Errorf("failed to update seat: %w", result.Error)
	}

	r.emit(ctx, tx, cache.EventSeatUpdated, model.SubscriptionID)

	r.logger.Infow("seat updated successfully", "seat_id", model.ID, "admin", model.Admin)
	return nil
}

func (r *SeatUsageRepositoryImpl) Delete(ctx context.Context, seat *plan.SeatUsage) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.SeatUsageModel{}, seat.ID().Uint64())
	if result.Error != nil {
		r.logger.Errorw("failed to delete seat", "error", result.Error, "seat_id", seat.ID())
		return fmt.Errorf("failed to delete seat: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(plan.ErrSeatNotFound.Error())
	}

	r.emit(ctx, tx, cache.EventSeatDeleted, seat.SubscriptionID().Uint64())

	r.logger.Infow("seat deleted successfully",
		"seat_id", seat.ID(),
		"subscription_id", seat.SubscriptionID(),
		"user_id", seat.UserID(),
	)
	return nil
}

func (r *SeatUsageRepositoryImpl) emit(ctx context.Context, tx *gorm.DB, event cache.Event, subscriptionID uint64) {
	if r.cache == nil {
		return
	}
	companyID, err := companyOf(tx, subscriptionID)
	if err != nil {
		r.logger.Warnw("failed to resolve company for cache invalidation", "error", err, "subscription_id", subscriptionID)
		return
	}
	invalidate(ctx, r.cache, event, cache.EventScope{CompanyID: companyID})
}
