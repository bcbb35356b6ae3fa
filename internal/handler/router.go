package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shortlink/internal/config"
	"shortlink/pkg/logger"
)

// NewRouter configures the Gin router with middleware and routes
func NewRouter(h *LinkHandler, cfg *config.Config, log *logger.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(SecurityHeadersMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "shortlink",
		})
	})

	router.GET("/", h.Root)

	api := router.Group("/api")
	{
		api.POST("/shorten", h.Shorten)
		api.GET("/links/:code", h.GetLink)
	}

	// Short link redirection, method-agnostic. Static routes above take
	// precedence over the wildcard, so /health can never be claimed as a code.
	router.Any("/:code", h.Redirect)

	router.NoRoute(h.NotFound)

	return router
}
