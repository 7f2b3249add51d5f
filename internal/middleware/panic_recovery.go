package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"transaction-importer/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery recovers from handler panics and returns a SYSTEM_001 response.
// A nil logger falls back to slog.Default.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				apiErrorsTotal.WithLabelValues(
					errorResponse.Error.Code,
					c.Path(),
					fmt.Sprintf("%d", http.StatusInternalServerError),
				).Inc()

				if c.Response().Committed {
					return
				}
				if sendErr := c.JSON(http.StatusInternalServerError, errorResponse); sendErr != nil {
					logger.Error("Failed to send panic recovery response",
						"trace_id", traceID,
						"error", sendErr.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
