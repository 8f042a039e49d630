package middleware

import (
	"net/http"

	"github.com/agentgenesis/api/internal/agentgen"
	"github.com/gin-gonic/gin"
)

// APIError represents a structured error response
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	RetryAfter int    `json:"retry_after_ms,omitempty"`
}

// ErrorResponse is the envelope every error is returned in
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeInternalError        = "INTERNAL_ERROR"
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeBackendAuthFailed    = "BACKEND_AUTH_FAILED"
	ErrCodeAIServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	ErrCodeExtractionFailed     = "EXTRACTION_FAILED"
)

// transportRetryHintMs is advisory; the server itself never retries.
const transportRetryHintMs = 5000

// RespondError sends a structured error response
func RespondError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, ErrorResponse{Error: APIError{
		Code:    code,
		Message: message,
	}})
}

// RespondErrorWithDetails sends a structured error response with details
func RespondErrorWithDetails(c *gin.Context, status int, code string, message string, details string) {
	c.JSON(status, ErrorResponse{Error: APIError{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// RespondErrorWithRetry sends a structured error response with details and a retry hint
func RespondErrorWithRetry(c *gin.Context, status int, code string, message string, details string, retryAfterMs int) {
	c.JSON(status, ErrorResponse{Error: APIError{
		Code:       code,
		Message:    message,
		Details:    details,
		RetryAfter: retryAfterMs,
	}})
}

// BadRequest sends a 400 error
func BadRequest(c *gin.Context, message string) {
	RespondError(c, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// NotFound sends a 404 error
func NotFound(c *gin.Context, message string) {
	RespondError(c, http.StatusNotFound, ErrCodeNotFound, message)
}

// InternalError sends a 500 error
func InternalError(c *gin.Context, message string) {
	RespondError(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// RespondGenerationError maps a generation failure onto its HTTP shape
func RespondGenerationError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch agentgen.KindOf(err) {
	case agentgen.KindInvalidInput:
		RespondError(c, http.StatusBadRequest, ErrCodeInvalidInput,
			"Please enter a task description for your AI agent.")
	case agentgen.KindAuthentication:
		RespondErrorWithDetails(c, http.StatusBadGateway, ErrCodeBackendAuthFailed,
			"The generation backend rejected the API key. Please check your Gemini API key configuration.",
			err.Error())
	case agentgen.KindTransport:
		RespondErrorWithRetry(c, http.StatusServiceUnavailable, ErrCodeAIServiceUnavailable,
			"Failed to reach the generation backend. Please check your network and try again.",
			err.Error(), transportRetryHintMs)
	case agentgen.KindExtraction:
		RespondErrorWithDetails(c, http.StatusBadGateway, ErrCodeExtractionFailed,
			"The AI failed to generate a valid code structure. The response was empty or not in the expected format.",
			err.Error())
	default:
		InternalError(c, "An unknown error occurred while generating the agent code.")
	}
}
