package handlers

import (
	"net/http"

	"transaction-importer/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError for client and domain errors and
// SendSystemError for anything internal. Internal error text never reaches the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	c.Logger().Errorf("internal error (trace %s): %v", traceID, internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
