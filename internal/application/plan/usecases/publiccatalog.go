package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// PublicCatalogUseCase serves the unauthenticated plan catalog.
type PublicCatalogUseCase struct {
	catalogRepo plan.CatalogRepository
	renderer    DescriptionRenderer
	prices      PriceFormatter
	logger      logger.Interface
}

func NewPublicCatalogUseCase(
	catalogRepo plan.CatalogRepository,
	renderer DescriptionRenderer,
	prices PriceFormatter,
	logger logger.Interface,
) *PublicCatalogUseCase {
	return &PublicCatalogUseCase{
		catalogRepo: catalogRepo,
		renderer:    renderer,
		prices:      prices,
		logger:      logger,
	}
}

// List validates params before touching storage, then returns one page of
// plans with their seat limits and prices.
func (uc *PublicCatalogUseCase) List(ctx context.Context, params plan.CatalogParams) (*dto.PublicPlanListDTO, error) {
	query, err := plan.NewCatalogQuery(params)
	if err != nil {
		return nil, toAppError(err)
	}

	plans, total, err := uc.catalogRepo.List(ctx, query)
	if err != nil {
		uc.logger.Errorw("failed to list public plans", "error", err, "limit", query.Limit, "offset", query.Offset)
		return nil, fmt.Errorf("failed to list public plans: %w", err)
	}

	out := &dto.PublicPlanListDTO{
		Plans:  make([]*dto.PublicPlanDTO, 0, len(plans)),
		Total:  total,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	for _, p := range plans {
		out.Plans = append(out.Plans, uc.present(p))
	}
	return out, nil
}

func (uc *PublicCatalogUseCase) GetByID(ctx context.Context, id int64) (*dto.PublicPlanDTO, error) {
	planID, err := parseID("plan ID", id)
	if err != nil {
		return nil, err
	}
	p, err := uc.catalogRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get public plan", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get public plan: %w", err)
	}
	if p == nil {
		return nil, toAppError(plan.ErrPlanNotFound)
	}
	return uc.present(p), nil
}

func (uc *PublicCatalogUseCase) present(p *plan.PublicPlan) *dto.PublicPlanDTO {
	var currency string
	if uc.prices != nil {
		currency = uc.prices.Currency()
	}
	out := dto.ToPublicPlanDTO(p, currency)
	if uc.prices != nil {
		out.Pricing.FormattedBasePrice = uc.prices.Format(p.DefaultAmount)
	}
	if uc.renderer != nil && p.Description != "" {
		html, err := uc.renderer.Render(p.Description)
		if err != nil {
			uc.logger.Warnw("failed to render plan description", "error", err, "plan_id", p.ID)
		} else {
			out.DescriptionHTML = html
		}
	}
	return out
}
