package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type CreateSeatLimitCommand struct {
	PlanTypeID     int64
	Admin          bool
	MaxSeats       int
	ExtraSeatPrice int64
	ActorID        uint64
}

type UpdateSeatLimitCommand struct {
	MaxSeats       int
	ExtraSeatPrice int64
	ActorID        uint64
}

type ManageSeatLimitsUseCase struct {
	seatLimitRepo plan.SeatLimitConfigRepository
	planTypeRepo  plan.PlanTypeRepository
	txMgr         TxManager
	logger        logger.Interface
}

func NewManageSeatLimitsUseCase(
	seatLimitRepo plan.SeatLimitConfigRepository,
	planTypeRepo plan.PlanTypeRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ManageSeatLimitsUseCase {
	return &ManageSeatLimitsUseCase{
		seatLimitRepo: seatLimitRepo,
		planTypeRepo:  planTypeRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

// Create rejects a second config for the same plan type and scope.
func (uc *ManageSeatLimitsUseCase) Create(ctx context.Context, cmd CreateSeatLimitCommand) (*dto.SeatLimitDTO, error) {
	planTypeID, err := parseID("plan type ID", cmd.PlanTypeID)
	if err != nil {
		return nil, err
	}
	scope := parseScope(cmd.Admin)
	config, err := plan.NewSeatLimitConfig(planTypeID, scope, cmd.MaxSeats, cmd.ExtraSeatPrice)
	if err != nil {
		return nil, toAppError(err)
	}

	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		planType, err := uc.planTypeRepo.GetByID(txCtx, planTypeID)
		if err != nil {
			return fmt.Errorf("failed to get plan type: %w", err)
		}
		if planType == nil {
			return toAppError(plan.ErrPlanTypeNotFound)
		}

		existing, err := uc.seatLimitRepo.GetByPlanTypeAndScope(txCtx, planTypeID, scope)
		if err != nil {
			return fmt.Errorf("failed to check existing seat limit: %w", err)
		}
		if existing != nil {
			return toAppError(plan.ErrDuplicateSeatLimit)
		}

		if err := uc.seatLimitRepo.Create(txCtx, config); err != nil {
			if errors.IsDuplicateError(err) {
				return toAppError(plan.ErrDuplicateSeatLimit)
			}
			return fmt.Errorf("failed to create seat limit: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create seat limit", "error", err, "plan_type_id", cmd.PlanTypeID, "scope", scope)
		return nil, err
	}

	uc.logger.Infow("seat limit created",
		"seat_limit_id", config.ID(),
		"plan_type_id", planTypeID,
		"scope", scope,
		"max_seats", config.MaxSeats(),
	)
	return dto.ToSeatLimitDTO(config), nil
}

func (uc *ManageSeatLimitsUseCase) Update(ctx context.Context, id int64, cmd UpdateSeatLimitCommand) (*dto.SeatLimitDTO, error) {
	configID, err := parseID("seat limit ID", id)
	if err != nil {
		return nil, err
	}

	var updated *plan.SeatLimitConfig
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		config, err := uc.seatLimitRepo.GetByID(txCtx, configID)
		if err != nil {
			return fmt.Errorf("failed to get seat limit: %w", err)
		}
		if config == nil {
			return toAppError(plan.ErrSeatLimitNotFound)
		}
		if err := config.Update(cmd.MaxSeats, cmd.ExtraSeatPrice); err != nil {
			return toAppError(err)
		}
		if err := uc.seatLimitRepo.Update(txCtx, config); err != nil {
			return fmt.Errorf("failed to update seat limit: %w", err)
		}
		updated = config
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update seat limit", "error", err, "seat_limit_id", id)
		return nil, err
	}

	uc.logger.Infow("seat limit updated", "seat_limit_id", configID, "max_seats", updated.MaxSeats())
	return dto.ToSeatLimitDTO(updated), nil
}

func (uc *ManageSeatLimitsUseCase) Delete(ctx context.Context, id int64, actorID uint64) error {
	configID, err := parseID("seat limit ID", id)
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		config, err := uc.seatLimitRepo.GetByID(txCtx, configID)
		if err != nil {
			return fmt.Errorf("failed to get seat limit: %w", err)
		}
		if config == nil {
			return toAppError(plan.ErrSeatLimitNotFound)
		}
		return uc.seatLimitRepo.Delete(txCtx, configID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete seat limit", "error", err, "seat_limit_id", id)
		return err
	}

	uc.logger.Infow("seat limit deleted", "seat_limit_id", configID)
	return nil
}

func (uc *ManageSeatLimitsUseCase) Get(ctx context.Context, id int64) (*dto.SeatLimitDTO, error) {
	configID, err := parseID("seat limit ID", id)
	if err != nil {
		return nil, err
	}
	config, err := uc.seatLimitRepo.GetByID(ctx, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seat limit: %w", err)
	}
	if config == nil {
		return nil, toAppError(plan.ErrSeatLimitNotFound)
	}
	return dto.ToSeatLimitDTO(config), nil
}

func (uc *ManageSeatLimitsUseCase) GetByScope(ctx context.Context, planTypeID int64, admin bool) (*dto.SeatLimitDTO, error) {
	typeID, err := parseID("plan type ID", planTypeID)
	if err != nil {
		return nil, err
	}
	config, err := uc.seatLimitRepo.GetByPlanTypeAndScope(ctx, typeID, parseScope(admin))
	if err != nil {
		return nil, fmt.Errorf("failed to get seat limit: %w", err)
	}
	if config == nil {
		return nil, toAppError(plan.ErrSeatLimitNotFound)
	}
	return dto.ToSeatLimitDTO(config), nil
}

func (uc *ManageSeatLimitsUseCase) ListByPlanType(ctx context.Context, planTypeID int64) ([]*dto.SeatLimitDTO, error) {
	typeID, err := parseID("plan type ID", planTypeID)
	if err != nil {
		return nil, err
	}
	configs, err := uc.seatLimitRepo.ListByPlanType(ctx, typeID)
	if err != nil {
		uc.logger.Errorw("failed to list seat limits", "error", err, "plan_type_id", planTypeID)
		return nil, fmt.Errorf("failed to list seat limits: %w", err)
	}
	return dto.ToList(configs, dto.ToSeatLimitDTO), nil
}
