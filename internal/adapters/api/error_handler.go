package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
	errorspkg "meteorenard.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	response := ErrorResponse{RequestID: c.GetString(requestIDKey)}

	if !errors.As(err, &appErr) {
		s.logError(c, err)
		response.Error = "Internal server error"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	var statusCode int
	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		response.Error = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		response.Error = appErr.Message
	case errorspkg.ConfigurationError:
		statusCode = http.StatusBadRequest
		response.Error = appErr.Message
	case errorspkg.ProviderError:
		statusCode = http.StatusBadGateway
		response.Error = appErr.Message
	case errorspkg.GeolocationError:
		statusCode = http.StatusUnprocessableEntity
		response.Error = appErr.Message
		var posErr *location.PositionError
		if errors.As(appErr, &posErr) {
			response.Code = string(posErr.Code)
		}
	default:
		s.logError(c, err)
		statusCode = http.StatusInternalServerError
		response.Error = "Internal server error"
	}

	c.JSON(statusCode, response)
}

func (s *HTTPServerAdapter) logError(c *gin.Context, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error("Request failed",
		ports.F("path", c.FullPath()),
		ports.F("request_id", c.GetString(requestIDKey)),
		ports.F("error", err))
}
