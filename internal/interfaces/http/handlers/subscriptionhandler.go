package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

// SubscriptionHandler serves company subscriptions, their plan changes,
// price overrides, history and cancellations.
type SubscriptionHandler struct {
	subscriptions subscriptionUseCase
	changes       subscriptionChangeUseCase
	overrides     priceOverrideUseCase
	history       historyUseCase
	cancellations cancellationUseCase
	logger        logger.Interface
}

func NewSubscriptionHandler(
	subscriptions subscriptionUseCase,
	changes subscriptionChangeUseCase,
	overrides priceOverrideUseCase,
	history historyUseCase,
	cancellations cancellationUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		changes:       changes,
		overrides:     overrides,
		history:       history,
		cancellations: cancellations,
		logger:        logger,
	}
}

type CreateSubscriptionRequest struct {
	CompanyID int64 `json:"company_id" binding:"required,gt=0"`
	PlanID    int64 `json:"plan_id" binding:"required,gt=0"`
	// Amount defaults to the plan's default amount when omitted.
	Amount               *int64 `json:"amount" binding:"omitempty,gte=0"`
	StartDate            string `json:"start_date" binding:"required"`
	EndDate              string `json:"end_date" binding:"required"`
	AdditionalUserAmount int64  `json:"additional_user_amount" binding:"gte=0"`
}

type UpdateSubscriptionRequest struct {
	Amount               int64  `json:"amount" binding:"gte=0"`
	EndDate              string `json:"end_date" binding:"required"`
	AdditionalUserAmount int64  `json:"additional_user_amount" binding:"gte=0"`
}

type ChangePlanRequest struct {
	NewPlanID int64  `json:"new_plan_id" binding:"required,gt=0"`
	Amount    *int64 `json:"amount" binding:"omitempty,gte=0"`
	Reason    string `json:"reason"`
}

type RenewSubscriptionRequest struct {
	NewEndDate string `json:"new_end_date" binding:"required"`
	Reason     string `json:"reason"`
}

// CreateSubscription opens a subscription for a company
// @Summary Create subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if !bindJSON(c, h.logger, &req, "create subscription") {
		return
	}

	startDate, err := parseDate("start_date", req.StartDate, false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := parseDate("end_date", req.EndDate, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscriptions.Create(c.Request.Context(), usecases.CreateSubscriptionCommand{
		CompanyID:            req.CompanyID,
		PlanID:               req.PlanID,
		Amount:               req.Amount,
		StartDate:            startDate,
		EndDate:              endDate,
		AdditionalUserAmount: req.AdditionalUserAmount,
		ActorID:              authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

// GetSubscription returns a subscription
// @Summary Get subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscriptions.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSubscription changes amount, end date and per-user amount
// @Summary Update subscription terms
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body UpdateSubscriptionRequest true "Terms"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/{id} [put]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if !bindJSON(c, h.logger, &req, "update subscription") {
		return
	}

	endDate, err := parseDate("end_date", req.EndDate, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscriptions.Update(c.Request.Context(), id, usecases.UpdateSubscriptionCommand{
		Amount:               req.Amount,
		EndDate:              endDate,
		AdditionalUserAmount: req.AdditionalUserAmount,
		ActorID:              authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription updated successfully", result)
}

// GetActiveSubscription returns the company's active subscription
// @Summary Get active subscription of a company
// @Tags Subscriptions
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /companies/{companyId}/subscription [get]
func (h *SubscriptionHandler) GetActiveSubscription(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscriptions.GetActiveByCompany(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCompanySubscriptions returns every subscription of a company
// @Summary List subscriptions of a company
// @Tags Subscriptions
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.SubscriptionDTO}
// @Router /companies/{companyId}/subscriptions [get]
func (h *SubscriptionHandler) ListCompanySubscriptions(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscriptions.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangePlan moves a subscription to another plan
// @Summary Change subscription plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body ChangePlanRequest true "New plan"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /subscriptions/{id}/change-plan [post]
func (h *SubscriptionHandler) ChangePlan(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePlanRequest
	if !bindJSON(c, h.logger, &req, "change plan") {
		return
	}

	result, err := h.changes.ChangePlan(c.Request.Context(), usecases.ChangePlanCommand{
		SubscriptionID: id,
		NewPlanID:      req.NewPlanID,
		Amount:         req.Amount,
		Reason:         req.Reason,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan changed successfully", result)
}

// RenewSubscription extends a subscription to a new end date
// @Summary Renew subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body RenewSubscriptionRequest true "Renewal"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/{id}/renew [post]
func (h *SubscriptionHandler) RenewSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RenewSubscriptionRequest
	if !bindJSON(c, h.logger, &req, "renew subscription") {
		return
	}

	newEndDate, err := parseDate("new_end_date", req.NewEndDate, true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changes.Renew(c.Request.Context(), usecases.RenewSubscriptionCommand{
		SubscriptionID: id,
		NewEndDate:     newEndDate,
		Reason:         req.Reason,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription renewed successfully", result)
}

// GetHistory returns the change history of a subscription, newest first
// @Summary Subscription history
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Param recent query int false "Only the most recent N entries, 10 when given without a value"
// @Success 200 {object} utils.APIResponse{data=[]dto.HistoryDTO}
// @Router /subscriptions/{id}/history [get]
func (h *SubscriptionHandler) GetHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// absent means the full history
	recent := 0
	if v, ok := c.GetQuery("recent"); ok && v == "" {
		recent = constants.DefaultRecentHistory
	} else {
		recent, err = utils.LimitQuery(c, "recent", 0, constants.MaxRecentHistory)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.history.Execute(c.Request.Context(), id, recent)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
