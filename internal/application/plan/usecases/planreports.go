package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type ManagePlanReportsUseCase struct {
	reportRepo       plan.PlanReportRepository
	planTypeRepo     plan.PlanTypeRepository
	planRepo         plan.PlanRepository
	subscriptionRepo plan.SubscriptionRepository
	txMgr            TxManager
	logger           logger.Interface
}

func NewManagePlanReportsUseCase(
	reportRepo plan.PlanReportRepository,
	planTypeRepo plan.PlanTypeRepository,
	planRepo plan.PlanRepository,
	subscriptionRepo plan.SubscriptionRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ManagePlanReportsUseCase {
	return &ManagePlanReportsUseCase{
		reportRepo:       reportRepo,
		planTypeRepo:     planTypeRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *ManagePlanReportsUseCase) Add(ctx context.Context, planTypeID, templateID int64, actorID uint64) (*dto.PlanReportDTO, error) {
	typeID, err := parseID("plan type ID", planTypeID)
	if err != nil {
		return nil, err
	}
	tplID, err := parseID("template ID", templateID)
	if err != nil {
		return nil, err
	}
	report, err := plan.NewPlanReport(typeID, tplID)
	if err != nil {
		return nil, toAppError(err)
	}

	err = uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		planType, err := uc.planTypeRepo.GetByID(txCtx, typeID)
		if err != nil {
			return fmt.Errorf("failed to get plan type: %w", err)
		}
		if planType == nil {
			return toAppError(plan.ErrPlanTypeNotFound)
		}
		if err := uc.reportRepo.Create(txCtx, report); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("report template already linked to plan type")
			}
			return fmt.Errorf("failed to create plan report: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to add plan report", "error", err, "plan_type_id", planTypeID, "template_id", templateID)
		return nil, err
	}

	uc.logger.Infow("plan report added", "plan_report_id", report.ID(), "plan_type_id", typeID, "template_id", tplID)
	return dto.ToPlanReportDTO(report), nil
}

func (uc *ManagePlanReportsUseCase) UpdateTemplate(ctx context.Context, id, templateID int64, actorID uint64) (*dto.PlanReportDTO, error) {
	reportID, err := parseID("plan report ID", id)
	if err != nil {
		return nil, err
	}
	tplID, err := parseID("template ID", templateID)
	if err != nil {
		return nil, err
	}

	var updated *plan.PlanReport
	err = uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		report, err := uc.reportRepo.GetByID(txCtx, reportID)
		if err != nil {
			return fmt.Errorf("failed to get plan report: %w", err)
		}
		if report == nil {
			return toAppError(plan.ErrPlanReportNotFound)
		}
		if err := report.ChangeTemplate(tplID); err != nil {
			return toAppError(err)
		}
		if err := uc.reportRepo.Update(txCtx, report); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("report template already linked to plan type")
			}
			return fmt.Errorf("failed to update plan report: %w", err)
		}
		updated = report
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update plan report", "error", err, "plan_report_id", id)
		return nil, err
	}
	return dto.ToPlanReportDTO(updated), nil
}

func (uc *ManagePlanReportsUseCase) Delete(ctx context.Context, id int64, actorID uint64) error {
	reportID, err := parseID("plan report ID", id)
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		report, err := uc.reportRepo.GetByID(txCtx, reportID)
		if err != nil {
			return fmt.Errorf("failed to get plan report: %w", err)
		}
		if report == nil {
			return toAppError(plan.ErrPlanReportNotFound)
		}
		return uc.reportRepo.Delete(txCtx, report)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete plan report", "error", err, "plan_report_id", id)
		return err
	}

	uc.logger.Infow("plan report deleted", "plan_report_id", reportID)
	return nil
}

func (uc *ManagePlanReportsUseCase) ListByPlanType(ctx context.Context, planTypeID int64) ([]*dto.PlanReportDTO, error) {
	typeID, err := parseID("plan type ID", planTypeID)
	if err != nil {
		return nil, err
	}
	reports, err := uc.reportRepo.ListByPlanType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan reports: %w", err)
	}
	return dto.ToList(reports, dto.ToPlanReportDTO), nil
}

// ListForCompany returns the reports of the plan type of the company's active
// subscription, or an empty list when the company has none.
func (uc *ManagePlanReportsUseCase) ListForCompany(ctx context.Context, companyID int64) ([]*dto.PlanReportDTO, error) {
	cID, err := parseID("company ID", companyID)
	if err != nil {
		return nil, err
	}

	sub, err := uc.subscriptionRepo.GetActiveByCompany(ctx, cID)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}
	if sub == nil {
		return []*dto.PlanReportDTO{}, nil
	}

	p, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return []*dto.PlanReportDTO{}, nil
	}

	reports, err := uc.reportRepo.ListByPlanType(ctx, p.PlanTypeID())
	if err != nil {
		return nil, fmt.Errorf("failed to list plan reports: %w", err)
	}
	return dto.ToList(reports, dto.ToPlanReportDTO), nil
}
