package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

// PublicCatalogHandler serves the unauthenticated plan catalog.
type PublicCatalogHandler struct {
	catalog publicCatalogUseCase
	logger  logger.Interface
}

func NewPublicCatalogHandler(catalog publicCatalogUseCase, logger logger.Interface) *PublicCatalogHandler {
	return &PublicCatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// catalogParams reads the raw query. Range checks happen in the domain query
// so a bad value is rejected before storage is touched.
func catalogParams(c *gin.Context) (plan.CatalogParams, error) {
	var p plan.CatalogParams
	var err error

	if p.Limit, err = utils.OptionalIntQuery(c, "limit"); err != nil {
		return p, err
	}
	if p.Offset, err = utils.OptionalIntQuery(c, "offset"); err != nil {
		return p, err
	}
	if p.Active, err = utils.OptionalBoolQuery(c, "active"); err != nil {
		return p, err
	}
	if p.MinAmount, err = utils.OptionalInt64Query(c, "min_amount"); err != nil {
		return p, err
	}
	if p.MaxAmount, err = utils.OptionalInt64Query(c, "max_amount"); err != nil {
		return p, err
	}
	p.PlanType = c.Query("plan_type")
	p.Duration = c.Query("duration")
	p.Sort = c.Query("sort")
	p.Order = c.Query("order")
	return p, nil
}

// ListPlans returns a filtered page of the public catalog
// @Summary List public plans
// @Tags Public
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Param plan_type query string false "Plan type name"
// @Param duration query string false "Plan duration"
// @Param active query bool false "Plan type active flag"
// @Param min_amount query int false "Minimum default amount"
// @Param max_amount query int false "Maximum default amount"
// @Param sort query string false "name, amount or duration"
// @Param order query string false "asc or desc"
// @Success 200 {object} utils.APIResponse{data=dto.PublicPlanListDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /public/plans [get]
func (h *PublicCatalogHandler) ListPlans(c *gin.Context) {
	params, err := catalogParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.catalog.List(c.Request.Context(), params)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetPlan returns one public plan
// @Summary Get public plan
// @Tags Public
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=dto.PublicPlanDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /public/plans/{id} [get]
func (h *PublicCatalogHandler) GetPlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
