package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type SetPriceOverrideCommand struct {
	SubscriptionID int64
	Admin          bool
	ExtraSeatPrice int64
	ActorID        uint64
}

type ManagePriceOverridesUseCase struct {
	overrideRepo     plan.PriceOverrideRepository
	subscriptionRepo plan.SubscriptionRepository
	txMgr            TxManager
	logger           logger.Interface
}

func NewManagePriceOverridesUseCase(
	overrideRepo plan.PriceOverrideRepository,
	subscriptionRepo plan.SubscriptionRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ManagePriceOverridesUseCase {
	return &ManagePriceOverridesUseCase{
		overrideRepo:     overrideRepo,
		subscriptionRepo: subscriptionRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// Set creates the override for (subscription, scope) or updates the existing one.
func (uc *ManagePriceOverridesUseCase) Set(ctx context.Context, cmd SetPriceOverrideCommand) (*dto.PriceOverrideDTO, error) {
	subscriptionID, err := parseID("subscription ID", cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	scope := parseScope(cmd.Admin)

	var result *plan.PriceOverride
	created := false
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByID(txCtx, subscriptionID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return toAppError(plan.ErrSubscriptionNotFound)
		}

		existing, err := uc.overrideRepo.GetBySubscriptionAndScope(txCtx, subscriptionID, scope)
		if err != nil {
			return fmt.Errorf("failed to get price override: %w", err)
		}
		if existing != nil {
			if err := existing.SetPrice(cmd.ExtraSeatPrice); err != nil {
				return toAppError(err)
			}
			if err := uc.overrideRepo.Update(txCtx, existing); err != nil {
				return fmt.Errorf("failed to update price override: %w", err)
			}
			result = existing
			return nil
		}

		override, err := plan.NewPriceOverride(subscriptionID, scope, cmd.ExtraSeatPrice)
		if err != nil {
			return toAppError(err)
		}
		if err := uc.overrideRepo.Create(txCtx, override); err != nil {
			return fmt.Errorf("failed to create price override: %w", err)
		}
		result = override
		created = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to set price override", "error", err, "subscription_id", cmd.SubscriptionID, "scope", scope)
		return nil, err
	}

	uc.logger.Infow("price override set",
		"subscription_id", subscriptionID,
		"scope", scope,
		"extra_seat_price", cmd.ExtraSeatPrice,
		"created", created,
	)
	return dto.ToPriceOverrideDTO(result), nil
}

func (uc *ManagePriceOverridesUseCase) Get(ctx context.Context, subscriptionID int64, admin bool) (*dto.PriceOverrideDTO, error) {
	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return nil, err
	}
	override, err := uc.overrideRepo.GetBySubscriptionAndScope(ctx, subID, parseScope(admin))
	if err != nil {
		return nil, fmt.Errorf("failed to get price override: %w", err)
	}
	if override == nil {
		return nil, toAppError(plan.ErrPriceOverrideNotFound)
	}
	return dto.ToPriceOverrideDTO(override), nil
}

func (uc *ManagePriceOverridesUseCase) List(ctx context.Context, subscriptionID int64) ([]*dto.PriceOverrideDTO, error) {
	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return nil, err
	}
	overrides, err := uc.overrideRepo.ListBySubscription(ctx, subID)
	if err != nil {
		return nil, fmt.Errorf("failed to list price overrides: %w", err)
	}
	return dto.ToList(overrides, dto.ToPriceOverrideDTO), nil
}

func (uc *ManagePriceOverridesUseCase) Delete(ctx context.Context, subscriptionID int64, admin bool, actorID uint64) error {
	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return err
	}
	scope := parseScope(admin)

	err = uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		override, err := uc.overrideRepo.GetBySubscriptionAndScope(txCtx, subID, scope)
		if err != nil {
			return fmt.Errorf("failed to get price override: %w", err)
		}
		if override == nil {
			return toAppError(plan.ErrPriceOverrideNotFound)
		}
		return uc.overrideRepo.Delete(txCtx, override.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete price override", "error", err, "subscription_id", subscriptionID, "scope", scope)
		return err
	}

	uc.logger.Infow("price override deleted", "subscription_id", subID, "scope", scope)
	return nil
}
