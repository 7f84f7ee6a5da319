package routes

import (
	"fmt"
	"net/http"

	"fintrack/internal/apis/dtos"
	"fintrack/internal/di"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupDefaultRoutes(router *gin.Engine) error {
	// Health check route
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dtos.Response{
			Success: true,
			Message: "fintrack API is running",
		})
	})

	registry, err := di.GetMetricsRegistry()
	if err != nil {
		return fmt.Errorf("failed to get metrics registry: %w", err)
	}
	RegisterMetricsRoute(router, registry)

	api := router.Group("/api")
	if err := SetupDatabaseRoutes(api); err != nil {
		return err
	}
	if err := SetupDocumentRoutes(api); err != nil {
		return err
	}
	return SetupUserRoutes(api)
}

func RegisterMetricsRoute(router *gin.Engine, gatherer prometheus.Gatherer) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
