package handlers

import (
	"net/http"

	"spendlens/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and business errors,
// 4xx) or SendSystemError (internal failures, 500). Neither
// echo.NewHTTPError nor a bare returned error should be used for expected
// failure paths: SendError keeps the error-code catalog and trace IDs
// consistent, and SendSystemError keeps internal details out of responses.

// TraceIDContextKey is the context key for storing the trace ID
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps list-style payloads with optional metadata.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError writes a standardized error response for a known error code.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError writes a generic SYSTEM_001 response so internal details
// never reach the client.
func SendSystemError(c echo.Context, err error) error {
	response, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, response)
}
