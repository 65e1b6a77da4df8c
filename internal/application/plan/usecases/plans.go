package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type PlanCommand struct {
	Name          string
	Description   string
	DefaultAmount int64
	Duration      string
	PlanTypeID    int64
	ActorID       uint64
}

type ManagePlansUseCase struct {
	planRepo     plan.PlanRepository
	planTypeRepo plan.PlanTypeRepository
	txMgr        TxManager
	logger       logger.Interface
}

func NewManagePlansUseCase(
	planRepo plan.PlanRepository,
	planTypeRepo plan.PlanTypeRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ManagePlansUseCase {
	return &ManagePlansUseCase{
		planRepo:     planRepo,
		planTypeRepo: planTypeRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ManagePlansUseCase) parse(cmd PlanCommand) (vo.Duration, vo.ID, error) {
	duration, err := vo.ParseDuration(cmd.Duration)
	if err != nil {
		return "", 0, toAppError(fmt.Errorf("%w: %s", plan.ErrInvalidInput, err.Error()))
	}
	planTypeID, err := parseID("plan type ID", cmd.PlanTypeID)
	if err != nil {
		return "", 0, err
	}
	return duration, planTypeID, nil
}

func (uc *ManagePlansUseCase) requirePlanType(ctx context.Context, id vo.ID) error {
	planType, err := uc.planTypeRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get plan type: %w", err)
	}
	if planType == nil {
		return toAppError(plan.ErrPlanTypeNotFound)
	}
	return nil
}

func (uc *ManagePlansUseCase) Create(ctx context.Context, cmd PlanCommand) (*dto.PlanDTO, error) {
	duration, planTypeID, err := uc.parse(cmd)
	if err != nil {
		return nil, err
	}
	p, err := plan.NewPlan(cmd.Name, cmd.Description, cmd.DefaultAmount, duration, planTypeID)
	if err != nil {
		return nil, toAppError(err)
	}

	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		if err := uc.requirePlanType(txCtx, planTypeID); err != nil {
			return err
		}
		if err := uc.planRepo.Create(txCtx, p); err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, err
	}

	uc.logger.Infow("plan created", "plan_id", p.ID(), "name", p.Name(), "plan_type_id", planTypeID)
	return dto.ToPlanDTO(p), nil
}

func (uc *ManagePlansUseCase) Update(ctx context.Context, id int64, cmd PlanCommand) (*dto.PlanDTO, error) {
	planID, err := parseID("plan ID", id)
	if err != nil {
		return nil, err
	}
	duration, planTypeID, err := uc.parse(cmd)
	if err != nil {
		return nil, err
	}

	var updated *plan.Plan
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		p, err := uc.planRepo.GetByID(txCtx, planID)
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if p == nil {
			return toAppError(plan.ErrPlanNotFound)
		}
		if p.PlanTypeID() != planTypeID {
			if err := uc.requirePlanType(txCtx, planTypeID); err != nil {
				return err
			}
		}
		if err := p.Update(cmd.Name, cmd.Description, cmd.DefaultAmount, duration, planTypeID); err != nil {
			return toAppError(err)
		}
		if err := uc.planRepo.Update(txCtx, p); err != nil {
			return fmt.Errorf("failed to update plan: %w", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", id)
		return nil, err
	}

	uc.logger.Infow("plan updated", "plan_id", planID)
	return dto.ToPlanDTO(updated), nil
}

func (uc *ManagePlansUseCase) Delete(ctx context.Context, id int64, actorID uint64) error {
	planID, err := parseID("plan ID", id)
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		p, err := uc.planRepo.GetByID(txCtx, planID)
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if p == nil {
			return toAppError(plan.ErrPlanNotFound)
		}
		return uc.planRepo.Delete(txCtx, planID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", id)
		return err
	}

	uc.logger.Infow("plan deleted", "plan_id", planID)
	return nil
}

func (uc *ManagePlansUseCase) Get(ctx context.Context, id int64) (*dto.PlanDTO, error) {
	planID, err := parseID("plan ID", id)
	if err != nil {
		return nil, err
	}
	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, toAppError(plan.ErrPlanNotFound)
	}
	return dto.ToPlanDTO(p), nil
}

func (uc *ManagePlansUseCase) List(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.ToList(plans, dto.ToPlanDTO), nil
}
