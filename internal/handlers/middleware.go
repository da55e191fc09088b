package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tadreeb/tadreeb-api/internal/checkout"
	"github.com/tadreeb/tadreeb-api/internal/logger"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

const sessionKey = "storefront_session"

// RequestID assigns each request an id for log correlation
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LogRequest logs each request with timing
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// SessionFromRequest builds the explicit session object handlers pass
// into the orchestrator. The token comes from the Authorization header;
// the return URL lets the login flow bring the learner back.
func SessionFromRequest(c *gin.Context) types.Session {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	returnURL := c.GetHeader("X-Return-URL")
	if returnURL == "" {
		returnURL = c.Request.URL.RequestURI()
	}
	return types.Session{Token: token, ReturnURL: returnURL}
}

// RequireSession rejects unauthenticated requests with the login
// redirect before any platform call is made.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromRequest(c)
		if !session.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:    "authentication required",
				LoginURL: checkout.LoginRedirect(session),
			})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// sessionFromContext returns the session stored by RequireSession.
func sessionFromContext(c *gin.Context) types.Session {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(types.Session); ok {
			return session
		}
	}
	return SessionFromRequest(c)
}
