package http

import (
	"errors"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

// ErrorResponse is the uniform envelope every failed request terminates in.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code,omitempty"`
}

// NewErrorHandler is the single point where request failures become
// responses. Typed errors pass through with their declared status and code;
// anything unexpected is logged in full and flattened to a generic 500.
func NewErrorHandler(logger ports.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *domain.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			// already shaped; originating layer did any logging
		case errors.Is(err, domain.ErrNotFound):
			appErr = domain.NewNotFound("Not found")
		case errors.Is(err, domain.ErrInvalidInput):
			appErr = domain.NewValidationError("invalid input")
		case errors.As(err, &httpErr) && (httpErr.Code == stdhttp.StatusNotFound || httpErr.Code == stdhttp.StatusMethodNotAllowed):
			// no handler claimed the request
			appErr = domain.NewNotFound("Not found")
		default:
			logger.Error(c.Request().Context(), "unhandled request error",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
			appErr = domain.NewInternal()
		}

		response := ErrorResponse{Error: ErrorBody{
			Message:    appErr.Message,
			StatusCode: appErr.StatusCode,
			Code:       appErr.Code,
		}}
		if err := c.JSON(appErr.StatusCode, response); err != nil {
			logger.Error(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
