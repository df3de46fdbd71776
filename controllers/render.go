package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel/errors"
	"hotel/response"
	"hotel/utils"
)

// handleServiceError traduz o AppError do coordenador para HTTP:
// NOT_FOUND -> 404, CONFLICT -> 409, demais rejeições de negócio -> 400,
// erros inesperados -> 500.
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		utils.LogError("erro inesperado: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeConflict:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}
