package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityusecases "github.com/GraziArcH/domain-sales/internal/application/identity/usecases"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

// IdentityHandler keeps identity users and subscription seats in step.
type IdentityHandler struct {
	identity identityIntegrationUseCase
	logger   logger.Interface
}

func NewIdentityHandler(identity identityIntegrationUseCase, logger logger.Interface) *IdentityHandler {
	return &IdentityHandler{
		identity: identity,
		logger:   logger,
	}
}

type CreateUserRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Surname    string `json:"surname" binding:"max=100"`
	CPF        string `json:"cpf" binding:"omitempty,len=11,numeric"`
	Email      string `json:"email" binding:"required,email"`
	Admin      bool   `json:"admin"`
	UserTypeID int64  `json:"user_type_id" binding:"required,gt=0"`
}

type ChangeAdminStatusRequest struct {
	Admin bool `json:"admin"`
}

// CreateUser creates a user and admits their seat in one step
// @Summary Create user with seat
// @Tags Identity
// @Accept json
// @Produce json
// @Param companyId path int true "Company ID"
// @Param request body CreateUserRequest true "User"
// @Success 201 {object} utils.APIResponse{data=identitydto.UserDTO}
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /identity/companies/{companyId}/users [post]
func (h *IdentityHandler) CreateUser(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateUserRequest
	if !bindJSON(c, h.logger, &req, "create user") {
		return
	}

	result, err := h.identity.CreateUserWithSeat(c.Request.Context(), identityusecases.CreateUserCommand{
		CompanyID:  companyID,
		Name:       req.Name,
		Surname:    req.Surname,
		CPF:        req.CPF,
		Email:      req.Email,
		Admin:      req.Admin,
		UserTypeID: req.UserTypeID,
		ActorID:    authorization.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ChangeAdminStatus switches a user between admin and regular seats
// @Summary Change user admin status
// @Tags Identity
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body ChangeAdminStatusRequest true "Admin flag"
// @Success 200 {object} utils.APIResponse{data=identitydto.UserDTO}
// @Failure 422 {object} utils.APIResponse
// @Router /identity/users/{userId}/admin [put]
func (h *IdentityHandler) ChangeAdminStatus(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeAdminStatusRequest
	if !bindJSON(c, h.logger, &req, "change admin status") {
		return
	}

	result, err := h.identity.ChangeUserAdminStatus(c.Request.Context(), userID, req.Admin, authorization.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// RemoveUser deactivates a user and releases their seat
// @Summary Remove user
// @Tags Identity
// @Param userId path int true "User ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /identity/users/{userId} [delete]
func (h *IdentityHandler) RemoveUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.identity.RemoveUser(c.Request.Context(), userID, authorization.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// SyncCompany admits seats for every active user of the company
// @Summary Full company sync
// @Tags Identity
// @Produce json
// @Param companyId path int true "Company ID"
// @Success 200 {object} utils.APIResponse{data=identityusecases.SyncReport}
// @Router /identity/companies/{companyId}/sync [post]
func (h *IdentityHandler) SyncCompany(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "companyId", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.identity.FullSyncCompany(c.Request.Context(), companyID, authorization.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
