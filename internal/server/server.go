package server

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tadreeb/tadreeb-api/internal/client/platform"
	"github.com/tadreeb/tadreeb-api/internal/handlers"
	"github.com/tadreeb/tadreeb-api/internal/logger"
)

// Handler Definitions
var (
	healthHandler   *handlers.HealthHandler
	catalogHandler  *handlers.CatalogHandler
	quoteHandler    *handlers.QuoteHandler
	checkoutHandler *handlers.CheckoutHandler

	platformClient *platform.PlatformClient
)

// InitializeHandlers wires the platform client and the handler set
func InitializeHandlers() {
	var err error
	platformClient, err = platform.NewPlatformClient()
	if err != nil {
		logger.Fatal("Unable to create platform client", zap.Error(err))
	}

	commonServices := handlers.NewCommonServices(platformClient)

	healthHandler = handlers.NewHealthHandler()
	catalogHandler = handlers.NewCatalogHandler(commonServices)
	quoteHandler = handlers.NewQuoteHandler(commonServices)
	checkoutHandler = handlers.NewCheckoutHandler(commonServices)
}

// InitializeRoutes mounts middleware and the storefront API routes
func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())
	router.Use(handlers.RequestID())

	// if we are not in production, log requests
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// Health check
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		// Public storefront routes
		api.GET("/programs", catalogHandler.ListPrograms)
		api.GET("/programs/:slug", catalogHandler.GetProgram)
		api.POST("/quote", quoteHandler.CreateQuote)

		// Protected routes (learner session required)
		protected := api.Group("/")
		protected.Use(handlers.RequireSession())
		{
			protected.POST("/checkout/registrations", checkoutHandler.CreateRegistration)
			protected.POST("/checkout/payments", checkoutHandler.CreatePayment)
			protected.GET("/enrollments", checkoutHandler.ListEnrollments)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept", "Authorization",
		"X-Request-ID", "X-Return-URL",
	}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
