package http

import (
	"errors"
	"net/http"

	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// ErrorHandler is the echo.HTTPErrorHandler of the service. It maps the
// error classes of errs onto status codes and hides the text of anything
// unexpected from clients.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request().Context()).Error("request failed", zap.Error(err))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		logger.FromContext(c.Request().Context()).Warn("write error response", zap.Error(writeErr))
	}
}

func classify(err error) (int, Error) {
	if details := fieldErrors(err); details != nil {
		return http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "request validation failed",
			Details: details,
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		return he.Code, Error{Code: he.Code, Message: msg}
	}

	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, Error{Code: http.StatusConflict, Message: err.Error()}
	default:
		return http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		}
	}
}
