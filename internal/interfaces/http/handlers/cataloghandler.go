package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

// CatalogHandler serves the admin side of the catalog: plan types, plans,
// seat limits and report links.
type CatalogHandler struct {
	planTypes  planTypeUseCase
	plans      planUseCase
	seatLimits seatLimitUseCase
	reports    planReportUseCase
	logger     logger.Interface
}

func NewCatalogHandler(
	planTypes planTypeUseCase,
	plans planUseCase,
	seatLimits seatLimitUseCase,
	reports planReportUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		planTypes:  planTypes,
		plans:      plans,
		seatLimits: seatLimits,
		reports:    reports,
		logger:     logger,
	}
}

type PlanTypeRequest struct {
	TypeName    string `json:"type_name" binding:"required,max=100"`
	Description string `json:"description"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active"`
}

type PlanRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Description   string `json:"description"`
	DefaultAmount int64  `json:"default_amount" binding:"gte=0"`
	Duration      string `json:"duration" binding:"required"`
	PlanTypeID    int64  `json:"plan_type_id" binding:"required,gt=0"`
}

type CreateSeatLimitRequest struct {
	Admin          bool  `json:"admin"`
	MaxSeats       int   `json:"max_seats" binding:"gte=0"`
	ExtraSeatPrice int64 `json:"extra_seat_price" binding:"gte=0"`
}

type UpdateSeatLimitRequest struct {
	MaxSeats       int   `json:"max_seats" binding:"gte=0"`
	ExtraSeatPrice int64 `json:"extra_seat_price" binding:"gte=0"`
}

type PlanReportRequest struct {
	ReportTemplateID int64 `json:"report_template_id" binding:"required,gt=0"`
}

func (r PlanTypeRequest) command(actorID uint64) usecases.PlanTypeCommand {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return usecases.PlanTypeCommand{
		TypeName:    r.TypeName,
		Description: r.Description,
		IsActive:    active,
		ActorID:     actorID,
	}
}

func (r PlanRequest) command(actorID uint64) usecases.PlanCommand {
	return usecases.PlanCommand{
		Name:          r.Name,
		Description:   r.Description,
		DefaultAmount: r.DefaultAmount,
		Duration:      r.Duration,
		PlanTypeID:    r.PlanTypeID,
		ActorID:       actorID,
	}
}

// CreatePlanType creates a plan type
// @Summary Create plan type
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body PlanTypeRequest true "Plan type"
// @Success 201 {object} utils.APIResponse{data=dto.PlanTypeDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plan-types [post]
func (h *CatalogHandler) CreatePlanType(c *gin.Context) {
	var req PlanTypeRequest
	if !bindJSON(c, h.logger, &req, "create plan type") {
		return
	}

	result, err := h.planTypes.Create(c.Request.Context(), req.command(authorization.ActorID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan type created successfully")
}

// UpdatePlanType updates a plan type
// @Summary Update plan type
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Plan type ID"
// @Param request body PlanTypeRequest true "Plan type"
// @Success 200 {object} utils.APIResponse{data=dto.PlanTypeDTO}
// @Router /plan-types/{id} [put]
func (h *CatalogHandler) UpdatePlanType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanTypeRequest
	if !bindJSON(c, h.logger, &req, "update plan type") {
		return
	}

	result, err := h.planTypes.Update(c.Request.Context(), id, req.command(authorization.ActorID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan type updated successfully", result)
}

// DeletePlanType deletes a plan type that no plan references
// @Summary Delete plan type
// @Tags Catalog
// @Param id path int true "Plan type ID"
// @Success 204
// @Failure 409 {object} utils.APIResponse
// @Router /plan-types/{id} [delete]
func (h *CatalogHandler) DeletePlanType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.planTypes.Delete(c.Request.Context(), id, authorization.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetPlanType returns a plan type
// @Summary Get plan type
// @Tags Catalog
// @Produce json
// @Param id path int true "Plan type ID"
// @Success 200 {object} utils.APIResponse{data=dto.PlanTypeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /plan-types/{id} [get]
func (h *CatalogHandler) GetPlanType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.planTypes.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlanTypes returns every plan type
// @Summary List plan types
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanTypeDTO}
// @Router /plan-types [get]
func (h *CatalogHandler) ListPlanTypes(c *gin.Context) {
	result, err := h.planTypes.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreatePlan creates a plan
// @Summary Create plan
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Plan"
// @Success 201 {object} utils.APIResponse{data=dto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /plans [post]
func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if !bindJSON(c, h.logger, &req, "create plan") {
		return
	}

	result, err := h.plans.Create(c.Request.Context(), req.command(authorization.ActorID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

// UpdatePlan updates a plan
// @Summary Update plan
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body PlanRequest true "Plan"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDTO}
// @Router /plans/{id} [put]
func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanRequest
	if !bindJSON(c, h.logger, &req, "update plan") {
		return
	}

	result, err := h.plans.Update(c.Request.Context(), id, req.command(authorization.ActorID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

// DeletePlan deletes a plan no subscription references
// @Summary Delete plan
// @Tags Catalog
// @Param id path int true "Plan ID"
// @Success 204
// @Router /plans/{id} [delete]
func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.plans.Delete(c.Request.Context(), id, authorization.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetPlan returns a plan
// @Summary Get plan
// @Tags Catalog
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDTO}
// @Router /plans/{id} [get]
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.plans.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlans returns every plan
// @Summary List plans
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanDTO}
// @Router /plans [get]
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	result, err := h.plans.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateSeatLimit configures the seat limit of one scope of a plan type
// @Summary Create seat limit
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Plan type ID"
// @Param request body CreateSeatLimitRequest true "Seat limit"
// @Success 201 {object} utils.APIResponse{data=dto.SeatLimitDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /plan-types/{id}/seat-limits [post]
func (h *CatalogHandler) CreateSeatLimit(c *gin.Context) {
	planTypeID, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateSeatLimitRequest
	if !bindJSON(c, h.logger, &req, "create seat limit") {
		return
	}

	result, err := h.seatLimits.Create(c.Request.Context(), usecases.CreateSeatLimitCommand{
		PlanTypeID:     planTypeID,
		Admin:          req.Admin,
		MaxSeats:       req.MaxSeats,
		ExtraSeatPrice: req.ExtraSeatPrice,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Seat limit created successfully")
}

// ListSeatLimits returns the seat limits of a plan type
// @Summary List seat limits of a plan type
// @Tags Catalog
// @Produce json
// @Param id path int true "Plan type ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.SeatLimitDTO}
// @Router /plan-types/{id}/seat-limits [get]
func (h *CatalogHandler) ListSeatLimits(c *gin.Context) {
	planTypeID, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seatLimits.ListByPlanType(c.Request.Context(), planTypeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSeatLimitByScope returns the seat limit of one scope of a plan type
// @Summary Get seat limit by scope
// @Tags Catalog
// @Produce json
// @Param id path int true "Plan type ID"
// @Param scope path string true "admin or regular"
// @Success 200 {object} utils.APIResponse{data=dto.SeatLimitDTO}
// @Router /plan-types/{id}/seat-limits/{scope} [get]
func (h *CatalogHandler) GetSeatLimitByScope(c *gin.Context) {
	planTypeID, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	admin, err := parseScopeParam(c, "scope")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seatLimits.GetByScope(c.Request.Context(), planTypeID, admin)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSeatLimit returns a seat limit
// @Summary Get seat limit
// @Tags Catalog
// @Produce json
// @Param id path int true "Seat limit ID"
// @Success 200 {object} utils.APIResponse{data=dto.SeatLimitDTO}
// @Router /seat-limits/{id} [get]
func (h *CatalogHandler) GetSeatLimit(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "seat limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seatLimits.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSeatLimit changes max seats and extra seat price
// @Summary Update seat limit
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Seat limit ID"
// @Param request body UpdateSeatLimitRequest true "Seat limit"
// @Success 200 {object} utils.APIResponse{data=dto.SeatLimitDTO}
// @Router /seat-limits/{id} [put]
func (h *CatalogHandler) UpdateSeatLimit(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "seat limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSeatLimitRequest
	if !bindJSON(c, h.logger, &req, "update seat limit") {
		return
	}

	result, err := h.seatLimits.Update(c.Request.Context(), id, usecases.UpdateSeatLimitCommand{
		MaxSeats:       req.MaxSeats,
		ExtraSeatPrice: req.ExtraSeatPrice,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Seat limit updated successfully", result)
}

// DeleteSeatLimit deletes a seat limit
// @Summary Delete seat limit
// @Tags Catalog
// @Param id path int true "Seat limit ID"
// @Success 204
// @Router /seat-limits/{id} [delete]
func (h *CatalogHandler) DeleteSeatLimit(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "seat limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.seatLimits.Delete(c.Request.Context(), id, authorization.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddPlanReport links a report template to a plan type
// @Summary Add report link
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Plan type ID"
// @Param request body PlanReportRequest true "Report template"
// @Success 201 {object} utils.APIResponse{data=dto.PlanReportDTO}
// @Router /plan-types/{id}/reports [post]
func (h *CatalogHandler) AddPlanReport(c *gin.Context) {
	planTypeID, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanReportRequest
	if !bindJSON(c, h.logger, &req, "add plan report") {
		return
	}

	result, err := h.reports.Add(c.Request.Context(), planTypeID, req.ReportTemplateID, authorization.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Report linked successfully")
}

// ListPlanReports returns the report links of a plan type
// @Summary List report links of a plan type
// @Tags Catalog
// @Produce json
// @Param id path int true "Plan type ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanReportDTO}
// @Router /plan-types/{id}/reports [get]
func (h *CatalogHandler) ListPlanReports(c *gin.Context) {
	planTypeID, err := utils.ParseIDParam(c, "id", "plan type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reports.ListByPlanType(c.Request.Context(), planTypeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePlanReport points a report link at another template
// @Summary Update report link
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Report link ID"
// @Param request body PlanReportRequest true "Report template"
// @Success 200 {object} utils.APIResponse{data=dto.PlanReportDTO}
// @Router /plan-reports/{id} [put]
func (h *CatalogHandler) UpdatePlanReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanReportRequest
	if !bindJSON(c, h.logger, &req, "update plan report") {
		return
	}

	result, err := h.reports.UpdateTemplate(c.Request.Context(), id, req.ReportTemplateID, authorization.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report link updated successfully", result)
}

// DeletePlanReport removes a report link
// @Summary Delete report link
// @Tags Catalog
// @Param id path int true "Report link ID"
// @Success 204
// @Router /plan-reports/{id} [delete]
func (h *CatalogHandler) DeletePlanReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.reports.Delete(c.Request.Context(), id, authorization.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
