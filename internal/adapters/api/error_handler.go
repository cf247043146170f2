package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/ports"
	errorspkg "weatherlookup.app/pkg/errors"
)

// statusClientClosedRequest reports a request the caller abandoned before a
// response was ready
const statusClientClosedRequest = 499

// ErrorResponse represents an error message structure for API responses.
// Status carries the upstream provider's HTTP status when there was one.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

// handleError maps application errors onto HTTP responses. Upstream rejections
// of the location are the caller's fault; everything else on the provider side
// is ours.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	if errorspkg.IsCancelled(err) {
		s.logError(c, statusClientClosedRequest, err)
		c.JSON(statusClientClosedRequest, ErrorResponse{Error: "request cancelled"})
		return
	}

	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		s.logError(c, http.StatusInternalServerError, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	message := appErr.Message

	switch appErr.Type {
	case errorspkg.ValidationError, errorspkg.ClientRequestError:
		statusCode = http.StatusBadRequest
	case errorspkg.ProviderError:
		statusCode = http.StatusInternalServerError
	case errorspkg.NormalizationError:
		statusCode = http.StatusInternalServerError
		message = "invalid response from weather provider"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	s.logError(c, statusCode, err)
	c.JSON(statusCode, ErrorResponse{Error: message, Status: appErr.Status})
}

func (s *HTTPServerAdapter) logError(c *gin.Context, statusCode int, err error) {
	fields := []ports.Field{
		ports.F("path", c.Request.URL.Path),
		ports.F("status", statusCode),
		ports.F("error", err),
	}
	logger := requestLogger(c, s.logger)
	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", fields...)
		return
	}
	logger.Warn("Request rejected", fields...)
}
