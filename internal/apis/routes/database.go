package routes

import (
	"fmt"

	"fintrack/internal/apis/handlers"
	"fintrack/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupDatabaseRoutes(api *gin.RouterGroup) error {
	databaseHandler, err := di.GetDatabaseHandler()
	if err != nil {
		return fmt.Errorf("failed to get database handler: %w", err)
	}

	RegisterDatabaseRoutes(api, databaseHandler)
	return nil
}

func RegisterDatabaseRoutes(api *gin.RouterGroup, h *handlers.DatabaseHandler) {
	api.GET("/test-connection", h.TestConnection)
	api.GET("/init-database", h.InitDatabase)
}
