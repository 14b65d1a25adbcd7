package handlers

import (
	"net/http"

	"github.com/iwtcode/cncSimulator/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse возвращает стандартизированный ответ с ошибкой
func (h *Handler) ErrorResponse(c *gin.Context, appErr *errors.AppError) {
	errorMessage := appErr.Message
	if appErr.IsUserFacing && appErr.Err != nil {
		errorMessage = appErr.Message + ": " + appErr.Err.Error()
	}

	if appErr.Code >= http.StatusInternalServerError {
		h.logger.Error(appErr.Message, "error", appErr.Err, "statusCode", appErr.Code)
	} else {
		h.logger.Warn(appErr.Message, "error", appErr.Err, "statusCode", appErr.Code)
	}
	c.AbortWithStatusJSON(appErr.Code, gin.H{
		"status": "error",
		"error": gin.H{
			"code":    appErr.Code,
			"message": errorMessage,
		},
	})
}

// BadRequest возвращает ошибку 400
func (h *Handler) BadRequest(c *gin.Context, err error, message string) {
	if message == "" {
		message = errors.BadRequest
	}
	h.ErrorResponse(c, errors.NewAppError(errors.BadRequestErrorCode, message, err, true))
}

// HandleError выбирает код ответа по ошибке домена
func (h *Handler) HandleError(c *gin.Context, err error) {
	h.ErrorResponse(c, errors.Classify(err))
}
