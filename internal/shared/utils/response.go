package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
)

// APIResponse is the envelope of every JSON body the API returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo describes a failed request. Type is the AppError type.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data, Message: message})
}

func writeError(c *gin.Context, status int, info ErrorInfo) {
	c.JSON(status, APIResponse{Success: false, Error: &info})
}

// SuccessResponse writes data under the given status.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	writeData(c, statusCode, message, data)
}

// CreatedResponse writes a 201 with an optional message.
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	writeData(c, http.StatusCreated, msg, data)
}

// ErrorResponse writes a generic error with the given status.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	writeError(c, statusCode, ErrorInfo{Type: "error", Message: message})
}

// ErrorResponseWithError maps an AppError to its status and type. Anything
// else becomes a 500 without internal details.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		writeError(c, http.StatusInternalServerError, ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: constants.ErrMsgInternalServerError,
		})
		return
	}

	writeError(c, appErr.Code, ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// NoContentResponse writes a bare 204.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
