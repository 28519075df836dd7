package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EchoMiddleware logs every request once it has been served. It expects
// echo's RequestID middleware to run first and puts a request-scoped logger
// into the request context.
func EchoMiddleware(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			ctx, reqLogger := WithRequestID(req.Context(), logger, requestID)
			reqLogger = reqLogger.With(
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(WithContext(ctx, reqLogger)))

			err := next(c)
			if err != nil {
				// lets the error handler write the response so the status is known
				c.Error(err)
			}

			status := c.Response().Status
			fields := []zap.Field{
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
				zap.Int64("body_size", c.Response().Size),
			}
			if query := req.URL.RawQuery; query != "" {
				fields = append(fields, zap.String("query", query))
			}

			msg := "HTTP Request"
			switch {
			case status >= 500:
				reqLogger.Error(msg, fields...)
			case status >= 400:
				reqLogger.Warn(msg, fields...)
			default:
				reqLogger.Info(msg, fields...)
			}

			return nil
		}
	}
}
