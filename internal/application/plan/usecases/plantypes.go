package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type PlanTypeCommand struct {
	TypeName    string
	Description string
	IsActive    bool
	ActorID     uint64
}

type ManagePlanTypesUseCase struct {
	planTypeRepo plan.PlanTypeRepository
	planRepo     plan.PlanRepository
	txMgr        TxManager
	logger       logger.Interface
}

func NewManagePlanTypesUseCase(
	planTypeRepo plan.PlanTypeRepository,
	planRepo plan.PlanRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ManagePlanTypesUseCase {
	return &ManagePlanTypesUseCase{
		planTypeRepo: planTypeRepo,
		planRepo:     planRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ManagePlanTypesUseCase) Create(ctx context.Context, cmd PlanTypeCommand) (*dto.PlanTypeDTO, error) {
	planType, err := plan.NewPlanType(cmd.TypeName, cmd.Description, cmd.IsActive)
	if err != nil {
		return nil, toAppError(err)
	}

	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		if err := uc.planTypeRepo.Create(txCtx, planType); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("plan type already exists", planType.TypeName())
			}
			return fmt.Errorf("failed to create plan type: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create plan type", "error", err, "type_name", cmd.TypeName)
		return nil, err
	}

	uc.logger.Infow("plan type created", "plan_type_id", planType.ID(), "type_name", planType.TypeName())
	return dto.ToPlanTypeDTO(planType), nil
}

func (uc *ManagePlanTypesUseCase) Update(ctx context.Context, id int64, cmd PlanTypeCommand) (*dto.PlanTypeDTO, error) {
	planTypeID, err := parseID("plan type ID", id)
	if err != nil {
		return nil, err
	}

	var updated *plan.PlanType
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		planType, err := uc.planTypeRepo.GetByID(txCtx, planTypeID)
		if err != nil {
			return fmt.Errorf("failed to get plan type: %w", err)
		}
		if planType == nil {
			return toAppError(plan.ErrPlanTypeNotFound)
		}
		if err := planType.Update(cmd.TypeName, cmd.Description, cmd.IsActive); err != nil {
			return toAppError(err)
		}
		if err := uc.planTypeRepo.Update(txCtx, planType); err != nil {
			return fmt.Errorf("failed to update plan type: %w", err)
		}
		updated = planType
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update plan type", "error", err, "plan_type_id", id)
		return nil, err
	}

	uc.logger.Infow("plan type updated", "plan_type_id", planTypeID)
	return dto.ToPlanTypeDTO(updated), nil
}

// Delete refuses to remove a plan type still referenced by plans.
func (uc *ManagePlanTypesUseCase) Delete(ctx context.Context, id int64, actorID uint64) error {
	planTypeID, err := parseID("plan type ID", id)
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		planType, err := uc.planTypeRepo.GetByID(txCtx, planTypeID)
		if err != nil {
			return fmt.Errorf("failed to get plan type: %w", err)
		}
		if planType == nil {
			return toAppError(plan.ErrPlanTypeNotFound)
		}
		inUse, err := uc.planRepo.CountByPlanType(txCtx, planTypeID)
		if err != nil {
			return fmt.Errorf("failed to count plans: %w", err)
		}
		if inUse > 0 {
			return toAppError(plan.ErrPlanTypeInUse)
		}
		return uc.planTypeRepo.Delete(txCtx, planTypeID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete plan type", "error", err, "plan_type_id", id)
		return err
	}

	uc.logger.Infow("plan type deleted", "plan_type_id", planTypeID)
	return nil
}

func (uc *ManagePlanTypesUseCase) Get(ctx context.Context, id int64) (*dto.PlanTypeDTO, error) {
	planTypeID, err := parseID("plan type ID", id)
	if err != nil {
		return nil, err
	}
	planType, err := uc.planTypeRepo.GetByID(ctx, planTypeID)
	if err != nil {
		uc.logger.Errorw("failed to get plan type", "error", err, "plan_type_id", id)
		return nil, fmt.Errorf("failed to get plan type: %w", err)
	}
	if planType == nil {
		return nil, toAppError(plan.ErrPlanTypeNotFound)
	}
	return dto.ToPlanTypeDTO(planType), nil
}

func (uc *ManagePlanTypesUseCase) List(ctx context.Context) ([]*dto.PlanTypeDTO, error) {
	types, err := uc.planTypeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plan types", "error", err)
		return nil, fmt.Errorf("failed to list plan types: %w", err)
	}
	return dto.ToList(types, dto.ToPlanTypeDTO), nil
}
