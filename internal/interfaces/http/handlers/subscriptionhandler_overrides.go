package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

type SetPriceOverrideRequest struct {
	ExtraSeatPrice int64 `json:"extra_seat_price" binding:"gte=0"`
}

// SetPriceOverride creates or replaces the extra seat price of one scope
// @Summary Set price override
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param scope path string true "admin or regular"
// @Param request body SetPriceOverrideRequest true "Override"
// @Success 200 {object} utils.APIResponse{data=dto.PriceOverrideDTO}
// @Router /subscriptions/{id}/price-overrides/{scope} [put]
func (h *SubscriptionHandler) SetPriceOverride(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	admin, err := parseScopeParam(c, "scope")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetPriceOverrideRequest
	if !bindJSON(c, h.logger, &req, "set price override") {
		return
	}

	result, err := h.overrides.Set(c.Request.Context(), usecases.SetPriceOverrideCommand{
		SubscriptionID: id,
		Admin:          admin,
		ExtraSeatPrice: req.ExtraSeatPrice,
		ActorID:        authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Price override saved", result)
}

// GetPriceOverride returns the override of one scope
// @Summary Get price override
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Param scope path string true "admin or regular"
// @Success 200 {object} utils.APIResponse{data=dto.PriceOverrideDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id}/price-overrides/{scope} [get]
func (h *SubscriptionHandler) GetPriceOverride(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	admin, err := parseScopeParam(c, "scope")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.overrides.Get(c.Request.Context(), id, admin)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPriceOverrides returns the overrides of a subscription
// @Summary List price overrides
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.PriceOverrideDTO}
// @Router /subscriptions/{id}/price-overrides [get]
func (h *SubscriptionHandler) ListPriceOverrides(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.overrides.List(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeletePriceOverride removes the override of one scope
// @Summary Delete price override
// @Tags Subscriptions
// @Param id path int true "Subscription ID"
// @Param scope path string true "admin or regular"
// @Success 204
// @Router /subscriptions/{id}/price-overrides/{scope} [delete]
func (h *SubscriptionHandler) DeletePriceOverride(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	admin, err := parseScopeParam(c, "scope")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.overrides.Delete(c.Request.Context(), id, admin, authorization.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
