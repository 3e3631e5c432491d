package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/publications-api/internal/config"
	"github.com/publications-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))

	// Handlers
	authHandler := NewAuthHandler(services, cfg, log)
	pubHandler := NewPublicationHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Registration and login are the only unauthenticated routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Publication routes all sit behind the token gate
	api := router.Group("/api")
	api.Use(authRequired(cfg.Auth.JWTSecret))
	{
		pubs := api.Group("/publication")
		{
			pubs.GET("", pubHandler.List)
			pubs.POST("", pubHandler.Create)
			pubs.GET("/trends/popular", pubHandler.Trending)
			pubs.GET("/:id", pubHandler.Get)
			pubs.PUT("/:id", pubHandler.Update)
			pubs.DELETE("/:id", pubHandler.Delete)

			pubs.GET("/:id/comments", commentHandler.List)
			pubs.POST("/:id/comment", commentHandler.Add)
			pubs.PUT("/:id/comment/:commentId", commentHandler.Edit)
			pubs.DELETE("/:id/comment/:commentId", commentHandler.Delete)
			pubs.PATCH("/:id/comment/:commentId/like", commentHandler.Like)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "publications-api",
	})
}
