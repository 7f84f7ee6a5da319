package routes

import (
	"fmt"

	"fintrack/internal/apis/handlers"
	"fintrack/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(api *gin.RouterGroup) error {
	userHandler, err := di.GetUserHandler()
	if err != nil {
		return fmt.Errorf("failed to get user handler: %w", err)
	}

	RegisterUserRoutes(api.Group("/users"), userHandler)
	return nil
}

func RegisterUserRoutes(users *gin.RouterGroup, h *handlers.UserHandler) {
	users.GET("", h.List)
	users.POST("", h.BulkInsert)
	users.PUT("", h.ReplaceAll)
	users.POST("/create", h.Create)
	users.POST("/login", h.Login)
	users.DELETE("/:id", h.Delete)
}
