package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tadreeb/tadreeb-api/internal/checkout"
	"github.com/tadreeb/tadreeb-api/internal/client/platform"
	"github.com/tadreeb/tadreeb-api/internal/logger"
)

// CommonServices holds shared dependencies used across handlers
type CommonServices struct {
	api platform.API
	now func() time.Time
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(api platform.API) *CommonServices {
	return &CommonServices{
		api: api,
		now: time.Now,
	}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error    string `json:"error"`
	LoginURL string `json:"login_url,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status"`
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendFlowError maps the checkout error taxonomy onto HTTP statuses:
// auth failures redirect to login, validation failures are correctable,
// availability conflicts mean pick another cohort, backend failures are
// retryable.
func sendFlowError(c *gin.Context, flowErr *checkout.FlowError) {
	logger.Warn("checkout flow error",
		zap.String("kind", string(flowErr.Kind)),
		zap.String("message", flowErr.Message),
		zap.String("path", c.Request.URL.Path),
	)

	switch flowErr.Kind {
	case checkout.KindAuth:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: flowErr.Message, LoginURL: flowErr.LoginURL})
	case checkout.KindValidation:
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: flowErr.Message})
	case checkout.KindAvailability:
		c.JSON(http.StatusConflict, ErrorResponse{Error: flowErr.Message})
	default:
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: flowErr.Message})
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
