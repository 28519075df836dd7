package http

import (
	"net/http"

	"purchasing/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewEcho builds the echo instance and mounts s. Panics are recovered inside
// the request logger so they are logged with a 500 status.
func NewEcho(zapLogger *zap.Logger, s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestID())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	s.Register(e)

	return e
}
