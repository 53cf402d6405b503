package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hpn/codered-chatbot/internal/chat"
	"github.com/hpn/codered-chatbot/internal/config"
	"github.com/hpn/codered-chatbot/internal/handler"
)

// newRouter builds the Gin engine with middleware and routes.
func newRouter(cfg *config.Configuration, composer *chat.Composer, logger *slog.Logger) *gin.Engine {
	chatHandler := handler.NewChatHandler(
		composer,
		handler.WithLogger(logger),
		handler.WithProviders(composer.Providers()),
	)

	router := gin.New()

	// Apply middleware
	router.Use(handler.RecoveryMiddleware(logger))
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(handler.LoggingMiddleware(logger))

	// Register routes
	router.POST("/api/message", chatHandler.HandleMessage)
	router.GET("/", chatHandler.HandleRoot)
	router.GET("/health", chatHandler.HandleHealth)

	return router
}
