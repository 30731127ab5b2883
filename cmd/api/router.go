package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"superhero-api/internal/shared/middleware"
	"superhero-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupSuperheroRoutes(router, c)

	return router
}

func setupSuperheroRoutes(router *gin.Engine, c *container.Container) {
	superheroes := router.Group("/superheroes")
	{
		superheroes.POST("", c.SuperheroHandler.Create)
		superheroes.GET("", c.SuperheroHandler.List)
		superheroes.GET("/:id", c.SuperheroHandler.GetByID)
		superheroes.PUT("/:id", c.SuperheroHandler.Update)
		superheroes.DELETE("/:id", c.SuperheroHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"store":     appCtx.Config.Store.Backend,
		}

		statusCode := http.StatusOK

		// The memory backend has nothing external to probe.
		if appCtx.DB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				health["status"] = "degraded"
				health["database"] = err.Error()
				statusCode = http.StatusServiceUnavailable
			} else {
				health["database"] = "ok"
			}
		}

		c.JSON(statusCode, health)
	}
}
