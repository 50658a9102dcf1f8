package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/zenpixdev/meet-task-tracker/errors"
	"github.com/zenpixdev/meet-task-tracker/internal/adapter/dto/common"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleError centralizes error handling and logging. AppError maps to its
// HTTP code; anything else becomes a 500. The body is the flat
// {"error": message} shape the frontend binds to.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = apperrors.ErrInternal(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{Error: appErr.Message})
}
