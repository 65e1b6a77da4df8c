package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

const maxPriceQuantity = 10000

// SeatHandler exposes the seat engine: admission, scope changes, pricing
// of extra seats and company level capacity views.
type SeatHandler struct {
	seats   seatEngineUseCase
	reports planReportUseCase
	logger  logger.Interface
}

func NewSeatHandler(seats seatEngineUseCase, reports planReportUseCase, logger logger.Interface) *SeatHandler {
	return &SeatHandler{
		seats:   seats,
		reports: reports,
		logger:  logger,
	}
}

type AdmitSeatRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
	Admin  bool  `json:"admin"`
}

type ChangeSeatScopeRequest struct {
	Admin bool `json:"admin"`
}

type SeatCandidateRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
	Admin  bool  `json:"admin"`
}

type SyncSeatsRequest struct {
	Users []SeatCandidateRequest `json:"users" binding:"dive"`
}

type CanAdmitSeatResponse struct {
	SubscriptionID int64 `json:"subscription_id"`
	Admin          bool  `json:"admin"`
	CanAdmit       bool  `json:"can_admit"`
}

func scopeQuery(c *gin.Context) (bool, error) {
	admin, err := utils.OptionalBoolQuery(c, "admin")
	if err != nil {
		return false, err
	}
	if admin == nil {
		return false, errors.NewValidationError("admin query parameter is required")
	}
	return *admin, nil
}

// ResolveExtraSeatPrice prices extra seats of one scope
// @Summary Resolve extra seat price
// @Tags Seats
// @Produce json
// @Param id path int true "Subscription ID"
// @Param admin query bool true "Admin scope"
// @Param quantity query int false "Number of extra seats" default(1)
// @Success 200 {object} utils.APIResponse{data=dto.ExtraSeatPriceDTO}
// @Router /subscriptions/{id}/price [get]
func (h *SeatHandler) ResolveExtraSeatPrice(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	admin, err := scopeQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	quantity, err := utils.LimitQuery(c, "quantity", 1, maxPriceQuantity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seats.ResolveExtraSeatPrice(c.Request.Context(), id, admin, quantity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CanAdmitSeat reports whether one more seat of the scope fits the limit
// @Summary Check seat admission
// @Tags Seats
// @Produce json
// @Param id path int true "Subscription ID"
// @Param admin query bool true "Admin scope"
// @Success 200 {object} utils.APIResponse{data=CanAdmitSeatResponse}
// @Router /subscriptions/{id}/seats/can-admit [get]
func (h *SeatHandler) CanAdmitSeat(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	admin, err := scopeQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ok, err := h.seats.CanAdmitSeat(c.Request.Context(), id, admin)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", CanAdmitSeatResponse{
		SubscriptionID: id,
		Admin:          admin,
		CanAdmit:       ok,
	})
}

// AdmitSeat assigns a seat to a user
// @Summary Admit seat
// @Tags Seats
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body AdmitSeatRequest true "Seat"
// @Success 201 {object} utils.APIResponse{data=dto.SeatDTO}
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /subscriptions/{id}/seats [post]
func (h *SeatHandler) AdmitSeat(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdmitSeatRequest
	if !bindJSON(c, h.logger, &req, "admit seat") {
		return
	}

	result, err := h.seats.AdmitSeat(c.Request.Context(), usecases.AdmitSeatCommand{
		SubscriptionID: id,
		UserID:         req.UserID,
		Admin:          req.Admin,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Seat admitted")
}

// RemoveSeat releases a user's seat
// @Summary Remove seat
// @Tags Seats
// @Param id path int true "Subscription ID"
// @Param userId path int true "User ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id}/seats/{userId} [delete]
func (h *SeatHandler) RemoveSeat(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.seats.RemoveSeat(c.Request.Context(), usecases.RemoveSeatCommand{
		SubscriptionID: id,
		UserID:         userID,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangeSeatScope moves a user's seat between admin and regular
// @Summary Change seat scope
// @Tags Seats
// @Accept json
// @Produce json
// @Param companyId path int true "Company ID"
// @Param userId path int true "User ID"
// @Param request body ChangeSeatScopeRequest true "Scope"
// @Success 200 {object} utils.APIResponse{data=dto.SeatDTO}
// @Failure 422 {object} utils.APIResponse
// @Router /companies/{companyId}/seats/{userId}/scope [put]
func (h *SeatHandler) ChangeSeatScope(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeSeatScopeRequest
	if !bindJSON(c, h.logger, &req, "change seat scope") {
		return
	}

	result, err := h.seats.ChangeSeatScope(c.Request.Context(), usecases.ChangeSeatScopeCommand{
		CompanyID: companyID,
		UserID:    userID,
		Admin:     req.Admin,
		ActorID:   authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Seat scope changed", result)
}

// SyncSeats admits seats for the given users, skipping those already seated
// @Summary Sync company seats
// @Tags Seats
// @Accept json
// @Produce json
// @Param companyId path int true "Company ID"
// @Param request body SyncSeatsRequest true "Users"
// @Success 200 {object} utils.APIResponse{data=dto.SyncResultDTO}
// @Router /companies/{companyId}/seats/sync [post]
func (h *SeatHandler) SyncSeats(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SyncSeatsRequest
	if !bindJSON(c, h.logger, &req, "sync seats") {
		return
	}

	users := make([]plan.SeatCandidate, 0, len(req.Users))
	for _, u := range req.Users {
		users = append(users, plan.SeatCandidate{UserID: u.UserID, Admin: u.Admin})
	}

	result, err := h.seats.SyncSeats(c.Request.Context(), usecases.SyncSeatsCommand{
		CompanyID: companyID,
		Users:     users,
		ActorID:   authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCompanySeats returns the seats of the company's active subscription
// @Summary List company seats
// @Tags Seats
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.SeatDTO}
// @Router /companies/{companyId}/seats [get]
func (h *SeatHandler) ListCompanySeats(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seats.CompanySeats(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCapacity returns seat usage against limits for the company
// @Summary Company seat capacity
// @Tags Seats
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {object} utils.APIResponse{data=dto.CapacityDTO}
// @Router /companies/{companyId}/capacity [get]
func (h *SeatHandler) GetCapacity(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seats.GetCapacity(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUsageSnapshot returns capacity plus the cost of extra seats
// @Summary Company usage snapshot
// @Tags Seats
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {object} utils.APIResponse{data=dto.UsageSnapshotDTO}
// @Router /companies/{companyId}/snapshot [get]
func (h *SeatHandler) GetUsageSnapshot(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seats.GetUsageSnapshot(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCompanyReports returns the reports available under the company's plan
// @Summary Company reports
// @Tags Seats
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.PlanReportDTO}
// @Router /companies/{companyId}/reports [get]
func (h *SeatHandler) ListCompanyReports(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reports.ListForCompany(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ValidateSeats checks every seat scope of a subscription against its limits
// @Summary Validate seats within limits
// @Tags Seats
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} utils.APIResponse{data=dto.CapacityDTO}
// @Router /subscriptions/{id}/seats/validate [get]
func (h *SeatHandler) ValidateSeats(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.seats.ValidateAllSeatsWithinLimits(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
