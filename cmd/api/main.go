package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tadreeb/tadreeb-api/internal/logger"
	"github.com/tadreeb/tadreeb-api/internal/server"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		// A missing .env file is fine in production where variables
		// are set directly in the environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Initialize logger first
	logger.InitLogger()
	defer func() {
		_ = logger.Sync()
	}()

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
