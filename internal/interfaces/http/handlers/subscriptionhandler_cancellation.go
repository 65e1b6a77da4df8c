package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

type RequestCancellationRequest struct {
	Reason  string         `json:"reason" binding:"required"`
	Details map[string]any `json:"details"`
}

type ConfirmCancellationRequest struct {
	Reason string `json:"reason"`
}

// RequestCancellation opens a pending cancellation for a subscription
// @Summary Request cancellation
// @Tags Cancellations
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body RequestCancellationRequest true "Cancellation"
// @Success 201 {object} utils.APIResponse{data=dto.CancellationDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/{id}/cancellations [post]
func (h *SubscriptionHandler) RequestCancellation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RequestCancellationRequest
	if !bindJSON(c, h.logger, &req, "request cancellation") {
		return
	}

	result, err := h.cancellations.Request(c.Request.Context(), usecases.RequestCancellationCommand{
		SubscriptionID: id,
		Reason:         req.Reason,
		Details:        req.Details,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Cancellation requested")
}

// ListCancellations returns the cancellations of a subscription
// @Summary List cancellations
// @Tags Cancellations
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.CancellationDTO}
// @Router /subscriptions/{id}/cancellations [get]
func (h *SubscriptionHandler) ListCancellations(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancellations.ListBySubscription(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCancellation returns a cancellation
// @Summary Get cancellation
// @Tags Cancellations
// @Produce json
// @Param id path int true "Cancellation ID"
// @Success 200 {object} utils.APIResponse{data=dto.CancellationDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /cancellations/{id} [get]
func (h *SubscriptionHandler) GetCancellation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "cancellation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancellations.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ConfirmCancellation cancels the subscription behind a pending request
// @Summary Confirm cancellation
// @Tags Cancellations
// @Accept json
// @Produce json
// @Param id path int true "Cancellation ID"
// @Param request body ConfirmCancellationRequest false "Confirmation"
// @Success 200 {object} utils.APIResponse{data=dto.CancellationDTO}
// @Failure 409 {object} utils.APIResponse
// @Router /cancellations/{id}/confirm [post]
func (h *SubscriptionHandler) ConfirmCancellation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "cancellation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// the body is optional
	var req ConfirmCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warnw("invalid request body", "operation", "confirm cancellation", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.cancellations.Confirm(c.Request.Context(), usecases.ConfirmCancellationCommand{
		CancellationID: id,
		Reason:         req.Reason,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled", result)
}
